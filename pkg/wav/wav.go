// Package wav encodes 16-bit linear PCM into RIFF/WAVE containers.
package wav

import (
	"bytes"
	"encoding/binary"
	"io"
)

// HeaderSize is the length of the canonical RIFF/WAVE/fmt/data header.
const HeaderSize = 44

// Writer streams a WAV file onto an io.Writer: header first, then
// samples.
type Writer struct {
	w          io.Writer
	sampleRate int
	channels   int
}

// NewWriter creates a WAV writer for 16-bit PCM.
func NewWriter(w io.Writer, sampleRate, channels int) *Writer {
	return &Writer{w: w, sampleRate: sampleRate, channels: channels}
}

// WriteHeader writes the container header for dataSize bytes of PCM.
func (w *Writer) WriteHeader(dataSize int) error {
	var buf bytes.Buffer

	// RIFF chunk
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize+HeaderSize-8))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // linear PCM
	binary.Write(&buf, binary.LittleEndian, uint16(w.channels))
	binary.Write(&buf, binary.LittleEndian, uint32(w.sampleRate))
	byteRate := w.sampleRate * w.channels * 2
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	blockAlign := w.channels * 2
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	// data chunk header
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))

	_, err := w.w.Write(buf.Bytes())
	return err
}

// WriteSamples writes PCM samples little-endian.
func (w *Writer) WriteSamples(pcm []int16) error {
	buf := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	_, err := w.w.Write(buf)
	return err
}

// Encode renders a complete mono WAV file for a PCM buffer.
func Encode(pcm []int16, sampleRate int) []byte {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(pcm)*2)

	w := NewWriter(&buf, sampleRate, 1)
	w.WriteHeader(len(pcm) * 2)
	w.WriteSamples(pcm)
	return buf.Bytes()
}
