package replay

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeFrames serializes frames for storage.
func EncodeFrames(frames []Frame) ([]byte, error) {
	if frames == nil {
		frames = []Frame{}
	}
	data, err := msgpack.Marshal(&frames)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode frames: %w", err)
	}
	return data, nil
}

// DecodeFrames parses frames produced by EncodeFrames.
// Frames must be in strictly increasing step order.
func DecodeFrames(data []byte) ([]Frame, error) {
	var frames []Frame
	if err := msgpack.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("replay: cannot decode frames: %w", err)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Step <= frames[i-1].Step {
			return nil, fmt.Errorf("replay: frame %d out of order (step %d after %d)", i, frames[i].Step, frames[i-1].Step)
		}
	}
	return frames, nil
}
