package state

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Container layout: 4-byte magic, 1-byte codec, 8-byte xxhash64 of the
// compressed payload (little endian), payload.
var containerMagic = [4]byte{'G', 'R', 'P', 'H'}

const containerHeaderSize = 4 + 1 + 8

var (
	// ErrBadMagic means the data is not a snapshot container.
	ErrBadMagic = errors.New("bad container magic")
	// ErrChecksum means the payload was corrupted after export.
	ErrChecksum = errors.New("container checksum mismatch")
)

// EncodeContainer serializes the snapshot to JSON and wraps it in the
// checksummed binary container using the given codec.
func EncodeContainer(s Snapshot, id CodecID) ([]byte, error) {
	codec, err := codecFor(id)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	out := make([]byte, containerHeaderSize+len(payload))
	copy(out[0:4], containerMagic[:])
	out[4] = byte(id)
	binary.LittleEndian.PutUint64(out[5:13], xxhash.Sum64(payload))
	copy(out[containerHeaderSize:], payload)
	return out, nil
}

// DecodeContainer validates and unwraps a container produced by
// EncodeContainer. Like ImportJSON it regenerates entity identifiers.
func DecodeContainer(data []byte) (Snapshot, error) {
	if len(data) < containerHeaderSize {
		return Snapshot{}, ErrBadMagic
	}
	if [4]byte(data[0:4]) != containerMagic {
		return Snapshot{}, ErrBadMagic
	}
	codec, err := codecFor(CodecID(data[4]))
	if err != nil {
		return Snapshot{}, err
	}
	want := binary.LittleEndian.Uint64(data[5:13])
	payload := data[containerHeaderSize:]
	if xxhash.Sum64(payload) != want {
		return Snapshot{}, ErrChecksum
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decompress snapshot: %w", err)
	}
	return ImportJSON(raw)
}
