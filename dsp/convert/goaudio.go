package convert

import "github.com/go-audio/audio"

// FloatBuffer narrows a float64 go-audio buffer into a new float32 buffer.
//
// Unlike [audio.FloatBuffer.AsFloat32Buffer], out-of-range samples saturate
// at the float32 limits instead of becoming infinite. The format pointer is
// shared with buf. A nil buf returns nil.
func FloatBuffer(buf *audio.FloatBuffer) *audio.Float32Buffer {
	if buf == nil {
		return nil
	}

	return &audio.Float32Buffer{
		Format: buf.Format,
		Data:   Float32s(nil, buf.Data),
	}
}
