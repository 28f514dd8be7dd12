package flows

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
)

// Waveform parameters of the speech model's PCM output.
const (
	wavChannels      = 1
	wavSampleRate    = 24000
	wavBitsPerSample = 16
)

// pcmToWavDataURI wraps raw little-endian PCM samples in a RIFF/WAVE
// container and returns it as a base64 data URI.
func pcmToWavDataURI(pcm []byte) string {
	wav := encodeWav(pcm)
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav)
}

// encodeWav prepends the 44-byte canonical WAV header to the PCM data.
func encodeWav(pcm []byte) []byte {
	byteRate := wavSampleRate * wavChannels * wavBitsPerSample / 8
	blockAlign := wavChannels * wavBitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(wavChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(wavSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(wavBitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
