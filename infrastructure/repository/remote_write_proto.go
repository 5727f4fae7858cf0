package repository

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"
)

// gaugeSample is one gauge observation bound for a Remote Write push
type gaugeSample struct {
	name        string
	value       float64
	labels      map[string]string
	timestampMs int64
}

// encodeWriteRequest encodes a batch of gauge samples as a Prometheus
// WriteRequest protobuf message, hand-rolled to avoid a generated-code
// dependency for a two-message schema.
func encodeWriteRequest(samples []gaugeSample) []byte {
	var buf bytes.Buffer
	for _, sample := range samples {
		// WriteRequest field 1: repeated TimeSeries
		writeLengthDelimited(&buf, 1, encodeTimeSeries(sample))
	}
	return buf.Bytes()
}

// encodeTimeSeries encodes one TimeSeries: its label set plus a single
// sample. Labels are sorted by name as the remote write spec requires.
func encodeTimeSeries(sample gaugeSample) []byte {
	labels := make(map[string]string, len(sample.labels)+1)
	labels["__name__"] = sample.name
	for k, v := range sample.labels {
		labels[k] = v
	}

	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		// TimeSeries field 1: repeated Label
		writeLengthDelimited(&buf, 1, encodeLabel(name, labels[name]))
	}
	// TimeSeries field 2: repeated Sample
	writeLengthDelimited(&buf, 2, encodeSample(sample.value, sample.timestampMs))
	return buf.Bytes()
}

func encodeLabel(name, value string) []byte {
	var buf bytes.Buffer
	writeString(&buf, 1, name)
	writeString(&buf, 2, value)
	return buf.Bytes()
}

func encodeSample(value float64, timestampMs int64) []byte {
	var buf bytes.Buffer
	// Sample field 1: value (double)
	writeFixed64(&buf, 1, math.Float64bits(value))
	// Sample field 2: timestamp (varint)
	writeVarint(&buf, 2, timestampMs)
	return buf.Bytes()
}

func writeLengthDelimited(buf *bytes.Buffer, fieldNum int, data []byte) {
	writeRawVarint(buf, uint64(fieldNum<<3|2))
	writeRawVarint(buf, uint64(len(data)))
	buf.Write(data)
}

func writeString(buf *bytes.Buffer, fieldNum int, s string) {
	writeRawVarint(buf, uint64(fieldNum<<3|2))
	writeRawVarint(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeFixed64(buf *bytes.Buffer, fieldNum int, v uint64) {
	writeRawVarint(buf, uint64(fieldNum<<3|1))
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func writeVarint(buf *bytes.Buffer, fieldNum int, v int64) {
	writeRawVarint(buf, uint64(fieldNum<<3))
	writeRawVarint(buf, uint64(v))
}

func writeRawVarint(buf *bytes.Buffer, v uint64) {
	for v >= 0x80 {
		buf.WriteByte(byte(v) | 0x80)
		v >>= 7
	}
	buf.WriteByte(byte(v))
}
