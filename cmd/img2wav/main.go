package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/img2wav/img2wav"
)

var (
	sampleRate uint
	seconds    float64
	bitDepth   uint
)

func init() {
	flag.UintVar(&sampleRate, "rate", 44100, "Output sample rate in Hz")
	flag.Float64Var(&seconds, "seconds", 5, "Length of the rendered audio in seconds")
	flag.UintVar(&bitDepth, "bits", 16, "Output bit depth (8, 16, 24 or 32)")
}

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}

	if sampleRate == 0 {
		fmt.Fprintln(os.Stderr, "Sample rate must be greater than zero")
		os.Exit(1)
	}

	if seconds <= 0 {
		fmt.Fprintln(os.Stderr, "Duration must be greater than zero")
		os.Exit(1)
	}

	in, out := flag.Arg(0), flag.Arg(1)

	frames, err := img2wav.Convert(in, out, uint32(sampleRate), seconds, uint16(bitDepth))
	if err != nil {
		fmt.Fprintf(os.Stderr, "converting %s: %v\n", in, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d samples to %s\n", frames, out)
}

func printUsage() {
	fmt.Println("img2wav - render an image as the frequency spectrum of a WAV file")
	fmt.Println("Usage: img2wav [-rate hz] [-seconds s] [-bits n] input-image output.wav")
	flag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  img2wav picture.png out.wav                 # 5s at 44.1kHz, 16-bit")
	fmt.Println("  img2wav -rate 96000 -seconds 10 in.jpg out.wav")
	fmt.Println("  img2wav -bits 32 spectro.png out.wav        # IEEE float output")
}
