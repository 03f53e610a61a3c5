package filehost

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// File layout, grounded on the teacher's slot-cache header format: a fixed
// magic + version + checksum header, followed by a flat run of
// length-prefixed (key, value) records.
//
//	offset  size  field
//	0       5     magic "CELL1"
//	5       1     format version
//	6       2     reserved
//	8       8     user version (caller-defined schema tag)
//	16      8     record count
//	24      4     header crc32 (Castagnoli)
//	28      4     reserved
const (
	fileMagic      = "CELL1"
	fileVersion    = 1
	headerSize     = 32
	offMagic       = 0
	offVersion     = 5
	offReserved1   = 6
	offUserVersion = 8
	offRecordCount = 16
	offHeaderCRC   = 24
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

type fileHeader struct {
	userVersion uint64
	recordCount uint64
}

func encodeHeader(h fileHeader) []byte {
	buf := make([]byte, headerSize)
	copy(buf[offMagic:], fileMagic)
	buf[offVersion] = fileVersion
	binary.LittleEndian.PutUint64(buf[offUserVersion:], h.userVersion)
	binary.LittleEndian.PutUint64(buf[offRecordCount:], h.recordCount)
	binary.LittleEndian.PutUint32(buf[offHeaderCRC:], computeHeaderCRC(buf))

	return buf
}

func computeHeaderCRC(buf []byte) uint32 {
	tmp := make([]byte, offHeaderCRC)
	copy(tmp, buf[:offHeaderCRC])

	return crc32.Checksum(tmp, crcTable)
}

func decodeHeader(buf []byte) (fileHeader, error) {
	if len(buf) < headerSize {
		return fileHeader{}, fmt.Errorf("%w: header truncated", ErrCorrupt)
	}

	if string(buf[offMagic:offMagic+len(fileMagic)]) != fileMagic {
		return fileHeader{}, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}

	if buf[offVersion] != fileVersion {
		return fileHeader{}, fmt.Errorf("%w: unsupported version %d", ErrIncompatible, buf[offVersion])
	}

	wantCRC := binary.LittleEndian.Uint32(buf[offHeaderCRC:])
	if gotCRC := computeHeaderCRC(buf); gotCRC != wantCRC {
		return fileHeader{}, fmt.Errorf("%w: header checksum mismatch", ErrCorrupt)
	}

	return fileHeader{
		userVersion: binary.LittleEndian.Uint64(buf[offUserVersion:]),
		recordCount: binary.LittleEndian.Uint64(buf[offRecordCount:]),
	}, nil
}
