package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/img2wav/img2wav"
	"github.com/img2wav/img2wav/decode"
	"github.com/img2wav/img2wav/pcm"
)

var (
	rate     uint
	mono     bool
	bitDepth uint
)

func init() {
	flag.UintVar(&rate, "rate", 0, "Resample to this rate in Hz (0 keeps the source rate)")
	flag.BoolVar(&mono, "mono", false, "Downmix to a single channel")
	flag.UintVar(&bitDepth, "bits", 16, "Output bit depth (8, 16, 24 or 32)")
}

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}

	in, out := flag.Arg(0), flag.Arg(1)

	src, err := decode.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening %s: %v\n", in, err)
		os.Exit(1)
	}
	defer src.Close()

	var pipeline pcm.Source = src
	if rate != 0 && int(rate) != pipeline.SampleRate() {
		pipeline = pcm.NewResampler(pipeline, int(rate))
	}
	if mono && pipeline.Channels() > 1 {
		pipeline = pcm.NewMonoMixer(pipeline)
	}

	frames, err := img2wav.WriteSource(out, pipeline, uint16(bitDepth))
	if err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d frames to %s\n", frames, out)
}

func printUsage() {
	fmt.Println("towav - transcode audio to PCM WAV")
	fmt.Printf("Supported input formats: %s\n", strings.Join(decode.Formats(), ", "))
	fmt.Println("Usage: towav [-rate hz] [-mono] [-bits n] input output.wav")
	flag.PrintDefaults()
}
