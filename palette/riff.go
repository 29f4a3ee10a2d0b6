package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
A Microsoft RIFF palette stores a LOGPALETTE in each data chunk:

typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// palVersion is the only LOGPALETTE version in use, stored as 0x0300.
var palVersion = [2]byte{0x00, 0x03}

// ReadRIFF returns every palette found in a RIFF PAL stream, in file order.
func ReadRIFF(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readChunks(rd, "PAL")
}

func readChunks(r *riff.Reader, ident string) ([]color.Palette, error) {
	var res []color.Palette

	for i := 0; ; i++ {
		chunkIdent := fmt.Sprintf("%s#%d", ident, i)
		id, size, data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("could not read chunk %s: %w", chunkIdent, err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list %s: %w", chunkIdent, err)
			} else if listType != palType {
				return res, fmt.Errorf("list %s has unsupported type: %s", chunkIdent, string(listType[:]))
			}

			nested, err := readChunks(list, chunkIdent)
			res = append(res, nested...)
			if err != nil {
				return res, err
			}
		case dataType:
			pal, err := readLogPalette(data, chunkIdent)
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %s: %s", chunkIdent, string(id[:]))
		}
	}
}

func readLogPalette(r io.Reader, ident string) (color.Palette, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("could not read palette header from %s: %w", ident, err)
	}

	if [2]byte(header[:2]) != palVersion {
		return nil, fmt.Errorf("unsupported palette version in %s: %#04x", ident, binary.BigEndian.Uint16(header[:2]))
	}

	count := int(binary.LittleEndian.Uint16(header[2:]))
	entries := make([]byte, count*4)
	if _, err := io.ReadFull(r, entries); err != nil {
		return nil, fmt.Errorf("could not read %d colors from %s: %w", count, ident, err)
	}

	pal := make(color.Palette, count)
	for i := range count {
		e := entries[i*4 : i*4+4]
		pal[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xff}
	}
	return pal, nil
}

// WriteRIFF stores pals as consecutive data chunks of a single RIFF PAL
// document. Colours are written opaque.
func WriteRIFF(w io.Writer, pals ...color.Palette) error {
	size := 4
	for _, pal := range pals {
		size += 8 + 4 + len(pal)*4
	}

	header := make([]byte, 0, 12)
	header = append(header, riffType[:]...)
	header = binary.LittleEndian.AppendUint32(header, uint32(size))
	header = append(header, palType[:]...)
	if err := writeBytes(w, header); err != nil {
		return fmt.Errorf("could not write RIFF header: %w", err)
	}

	for i, pal := range pals {
		if err := writeLogPalette(w, pal); err != nil {
			return fmt.Errorf("could not write palette %d: %w", i, err)
		}
	}
	return nil
}

func writeLogPalette(w io.Writer, pal color.Palette) error {
	buf := make([]byte, 0, 12+len(pal)*4)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(4+len(pal)*4))
	buf = append(buf, palVersion[:]...)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))
	for _, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		buf = append(buf, c.R, c.G, c.B, 0x00)
	}
	return writeBytes(w, buf)
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}
	return nil
}
