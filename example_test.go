package wma_test

import (
	"fmt"

	"github.com/llehouerou/go-wma"
)

func Example() {
	// Stream parameters come from the container (e.g. an ASF
	// demuxer); the extra data carries the codec flag word.
	extraData := []byte{0, 0, 0, 0, 0x01, 0x00}

	dec, err := wma.NewDecoder(2, 22050, 1, 32000, 512, extraData)
	if err != nil {
		fmt.Printf("init error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", dec.SampleRate())
	fmt.Printf("Channels: %d\n", dec.Channels())
	fmt.Printf("Frame length: %d\n", dec.FrameLen())

	// Feed packets in encoding order with dec.QueuePacket(pkt) and
	// drain PCM with dec.ReadBuffer(buf).

	// Output:
	// Sample rate: 22050 Hz
	// Channels: 1
	// Frame length: 1024
}
