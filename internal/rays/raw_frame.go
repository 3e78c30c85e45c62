package rays

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 writes a little-endian int32 width, height header followed by
// width*height*3 float64 values (R, G, B per pixel, row-major, top row first).
func (f *Frame) SaveRawRGB64(path string) error {
	exp := f.Width * f.Height
	if len(f.Pix) != exp {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (Width*Height)", len(f.Pix), exp)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	w := bufio.NewWriter(fh)
	if err := binary.Write(w, binary.LittleEndian, int32(f.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(f.Height)); err != nil {
		return err
	}
	buf := make([]float64, 0, exp*3)
	for _, c := range f.Pix {
		buf = append(buf, c.R, c.G, c.B)
	}
	if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return fh.Sync()
}

// LoadRawRGB64 reads a frame written by SaveRawRGB64. Every pixel is marked as hit.
func LoadRawRGB64(path string) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	r := bufio.NewReader(fh)
	var w, h int32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bad raw frame size %dx%d", w, h)
	}
	buf := make([]float64, int(w)*int(h)*3)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, err
	}
	f := NewFrame(int(w), int(h))
	for i := range f.Pix {
		f.Pix[i] = RGB{buf[3*i], buf[3*i+1], buf[3*i+2]}
		f.Hit[i] = true
	}
	return f, nil
}
