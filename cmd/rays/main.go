package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"
	"github.com/lukaszgryglicki/rays/internal/rays"
)

// loadEnv loads .env, or the file named by RAYS_ENV. A missing default .env is fine;
// a missing explicit one is reported.
func loadEnv() error {
	envFile, explicit := ".env", false
	if p := os.Getenv("RAYS_ENV"); p != "" {
		envFile, explicit = p, true
	}
	if err := godotenv.Load(envFile); err != nil && explicit {
		return fmt.Errorf("RAYS_ENV=%s: %w", envFile, err)
	}
	return nil
}

// startProfile starts CPU profiling into path and returns the function that stops it.
func startProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("No scene file specified: 'rays scene.sc [out.gif]'. Quitting...")
		os.Exit(1)
	}

	if err := loadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	rays.Debug = os.Getenv("DEBUG") != ""
	rays.PNG = os.Getenv("PNG") != ""
	rays.RAW = os.Getenv("RAW") != ""
	rays.Dither = os.Getenv("DITHER") != ""
	opts, err := rays.OptionsFromEnv(os.Getenv)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	stop := func() {}
	if os.Getenv("PROFILE") != "" {
		if stop, err = startProfile("cpu.out"); err != nil {
			panic(err)
		}
	}

	out := rays.GIFOut
	if len(os.Args) > 2 {
		out = os.Args[2]
	}
	_, err = rays.Run(context.Background(), os.Args[1], out, opts)
	stop()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
