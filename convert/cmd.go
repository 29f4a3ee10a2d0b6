package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"texparse/prepare"
	"texparse/texture"

	"github.com/alecthomas/kong"
)

// Options shared by every command that writes texture files.
type Options struct {
	EmptyBlock string `help:"Where to put the extra empty vec![] block (none, leading, trailing)" enum:"none,leading,trailing" default:"trailing"`

	prepare.Options
}

// Validate checks the empty block placement and the preparation options.
func (o *Options) Validate() error {
	if _, err := texture.ParseEmptyBlock(o.EmptyBlock); err != nil {
		return err
	}
	return o.Options.Validate()
}

type CLICmd struct {
	Input   string `help:"Image to convert" short:"i" default:"Texture Parser/wall_brick.png"`
	Output  string `help:"Text file to write, overwritten if present" short:"o" default:"Texture Parser/texture_output.txt"`
	Preview bool   `help:"Print the first written row to stdout" default:"true" negatable:""`
	Keep    string `help:"Also save the prepared image (png, gif, jpeg or tiff by extension)"`

	Options
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Input, err = filepath.Abs(c.Input); err != nil {
		return fmt.Errorf("invalid input path %q: %w", c.Input, err)
	}
	if c.Output, err = filepath.Abs(c.Output); err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Output, err)
	}
	if c.Keep != "" {
		if c.Keep, err = filepath.Abs(c.Keep); err != nil {
			return fmt.Errorf("invalid prepared image path %q: %w", c.Keep, err)
		}
	}
	return c.Options.Validate()
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Input)
	table, err := File(logger, c.Input, c.Output, c.Keep, &c.Options)
	if err != nil {
		return err
	}

	if c.Preview {
		if err = texture.Preview(os.Stdout, table); err != nil {
			return fmt.Errorf("could not print preview: %w", err)
		}
	}
	return nil
}

// File converts the image at src and writes the result to dest. When keep is
// set the prepared image is saved there as well. The table that was written,
// empty block included, is returned.
func File(logger *slog.Logger, src, dest, keep string, opts *Options) (texture.Table, error) {
	placement, err := texture.ParseEmptyBlock(opts.EmptyBlock)
	if err != nil {
		return nil, err
	}

	img, imgType, err := texture.Load(src)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded", "format", imgType, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if img, err = opts.Apply(logger, img); err != nil {
		return nil, err
	}
	if keep != "" {
		if err = prepare.Save(keep, img); err != nil {
			return nil, err
		}
	}

	table := texture.Pad(texture.Format(img), placement)
	if err = texture.Write(dest, table); err != nil {
		return nil, err
	}

	logger.Info("converted", "output", dest, "rows", img.Bounds().Dy(), "columns", img.Bounds().Dx(),
		"blocks", len(table))
	return table, nil
}
