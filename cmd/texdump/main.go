package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scenetrace/internal/imageio"
	"scenetrace/internal/texture"
)

func dumpTexture(path, outDir string) error {
	img, format, err := texture.LoadTexture(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	avg := texture.Average(img)
	fmt.Printf("OK  %s  %s %dx%d  avg=%v\n", path, strings.ToUpper(format), b.Dx(), b.Dy(), avg)

	if outDir == "" {
		return nil
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dst := filepath.Join(outDir, stem+"_dump.png")
	if err := imageio.Save(dst, img, imageio.Options{}); err != nil {
		return err
	}
	fmt.Printf("    -> %s\n", dst)
	return nil
}

func main() {
	outDir := flag.String("png", "", "Directory to write decoded textures into as PNG")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: texdump [-png dir] texture...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	errors := 0
	for _, path := range flag.Args() {
		if err := dumpTexture(path, *outDir); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Println("\nDone.")
}
