package transcribe

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func buildWAV(byteRate, dataSize uint32) []byte {
	var buf bytes.Buffer

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(16000))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

func TestWAVDuration(t *testing.T) {
	d, err := WAVDuration(buildWAV(32000, 320000))
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, d)

	d, err = WAVDuration(buildWAV(32000, 16000))
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, d)
}

func TestWAVDuration_SkipsUnknownChunks(t *testing.T) {
	wav := buildWAV(32000, 320000)

	// Splice a LIST chunk between fmt and data.
	var buf bytes.Buffer
	buf.Write(wav[:36])
	buf.WriteString("LIST")
	binary.Write(&buf, binary.LittleEndian, uint32(4))
	buf.WriteString("INFO")
	buf.Write(wav[36:])

	d, err := WAVDuration(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, d)
}

func TestWAVDuration_RejectsGarbage(t *testing.T) {
	_, err := WAVDuration(nil)
	require.ErrorIs(t, err, ErrNotWAV)

	_, err = WAVDuration([]byte("OggS this is something else entirely"))
	require.ErrorIs(t, err, ErrNotWAV)

	// RIFF magic without any usable chunks.
	_, err = WAVDuration([]byte("RIFF\x00\x00\x00\x00WAVE"))
	require.ErrorIs(t, err, ErrNotWAV)
}
