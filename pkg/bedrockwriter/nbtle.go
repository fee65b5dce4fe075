package bedrockwriter

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"
)

// Bedrock's LevelDB payloads and level.dat use fixed-width little-endian
// NBT, a third encoding alongside Tnze/go-mc/nbt's big-endian (Java) and
// varint-network modes. That library exposes neither, so this is a small
// hand-written encoder for exactly the subset needs:
// End/Byte/Short/Int/Long/Float/String/Compound tags, grounded directly
// on original_source/src/world_editor/bedrock.rs's `nbtx::to_le_bytes`
// calls and the byte layout it writes.
const (
	tagEnd byte = 0
	tagByte byte = 1
	tagShort byte = 2
	tagInt byte = 3
	tagLong byte = 4
	tagFloat byte = 5
	tagString byte = 8
	tagCompound byte = 10
)

// leField is one named value inside a compound, in write order.
type leField interface {
	encode(buf *bytes.Buffer)
}

func writeTagHeader(buf *bytes.Buffer, tagType byte, name string) {
	buf.WriteByte(tagType)
	nameBytes := []byte(name)
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(nameBytes)))
	buf.Write(lenBuf[:])
	buf.Write(nameBytes)
}

type byteField struct {
	name string
	v byte
}

func (f byteField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagByte, f.name)
	buf.WriteByte(f.v)
}

func boolField(name string, v bool) byteField {
	if v {
		return byteField{name, 1}
	}
	return byteField{name, 0}
}

type shortField struct {
	name string
	v int16
}

func (f shortField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagShort, f.name)
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(f.v))
	buf.Write(b[:])
}

type intField struct {
	name string
	v int32
}

func (f intField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagInt, f.name)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(f.v))
	buf.Write(b[:])
}

type longField struct {
	name string
	v int64
}

func (f longField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagLong, f.name)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(f.v))
	buf.Write(b[:])
}

type floatField struct {
	name string
	v float32
}

func (f floatField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagFloat, f.name)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(f.v))
	buf.Write(b[:])
}

type stringField struct {
	name string
	v string
}

func (f stringField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagString, f.name)
	b := []byte(f.v)
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(b)))
	buf.Write(lenBuf[:])
	buf.Write(b)
}

// compoundField nests another field list under name; used both for
// level.dat sub-objects and for Bedrock block-state "states" compounds.
type compoundField struct {
	name string
	fields []leField
}

func (f compoundField) encode(buf *bytes.Buffer) {
	writeTagHeader(buf, tagCompound, f.name)
	for _, inner := range f.fields {
		inner.encode(buf)
	}
	buf.WriteByte(tagEnd)
}

// encodeRootCompound serializes fields as the unnamed root compound LE-NBT
// document Bedrock expects (no enclosing root name).
func encodeRootCompound(fields []leField) []byte {
	var buf bytes.Buffer
	writeTagHeader(&buf, tagCompound, "")
	for _, f := range fields {
		f.encode(&buf)
	}
	buf.WriteByte(tagEnd)
	return buf.Bytes()
}

// sortedStateFields builds deterministic leField entries from a block
// state map, sorting keys so repeated encodes of the same state are
// byte-identical.
func sortedStateFields(states map[string]BlockStateValue) []leField {
	keys := make([]string, 0, len(states))
	for k := range states {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]leField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, states[k].field(k))
	}
	return fields
}
