package transcribe

import (
	"encoding/binary"
	"errors"
	"time"
)

var ErrNotWAV = errors.New("not a RIFF/WAVE stream")

// WAVDuration reads the RIFF chunks of an in-memory WAV payload and returns
// the play time of its data chunk. Recordings come from browsers, so only
// PCM-style headers with a byte rate are expected.
func WAVDuration(data []byte) (time.Duration, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0, ErrNotWAV
	}

	var (
		byteRate uint32
		dataSize uint32
	)

	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := binary.LittleEndian.Uint32(data[off+4 : off+8])
		body := off + 8

		switch id {
		case "fmt ":
			if body+12 > len(data) {
				return 0, ErrNotWAV
			}
			byteRate = binary.LittleEndian.Uint32(data[body+8 : body+12])
		case "data":
			dataSize = size
		}

		// Chunks are word-aligned.
		off = body + int(size)
		if size%2 == 1 {
			off++
		}
	}

	if byteRate == 0 || dataSize == 0 {
		return 0, ErrNotWAV
	}

	seconds := float64(dataSize) / float64(byteRate)
	return time.Duration(seconds * float64(time.Second)), nil
}
