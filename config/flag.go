package config

import (
	"flag"
)

// Overrides holds the command line settings that win over an options file.
type Overrides struct {
	fs   *flag.FlagSet
	opts Options
}

// BindFlags registers one flag per option on fs.
func BindFlags(fs *flag.FlagSet) (ov *Overrides) {
	ov = &Overrides{fs: fs, opts: Default()}
	opts := &ov.opts

	fs.StringVar(&opts.Sheet, "s", "", "Worksheet name, default is the first sheet")
	fs.StringVar(&opts.Block, "block", opts.Block, "Register block class name")
	fs.StringVar(&opts.Map, "map", opts.Map, "Default map name")
	fs.StringVar(&opts.Guard, "guard", opts.Guard, "Include guard macro")
	fs.Var(&opts.GuardClose, "guard-close", "Trailing include guard: omit, comment or emit")
	fs.Var(&opts.Offsets, "offsets", "Map offsets: fixed or column")
	fs.Var(&opts.Duplicates, "duplicates", "Repeated register names: allow or reject")
	fs.IntVar(&opts.Width, "width", opts.Width, "Register width in bits")
	fs.BoolVar(&opts.Descriptions, "descriptions", opts.Descriptions, "Emit register descriptions as comments")

	return
}

// Apply copies every flag set on the command line into opts.
func (ov *Overrides) Apply(opts *Options) {
	ov.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "s":
			opts.Sheet = ov.opts.Sheet
		case "block":
			opts.Block = ov.opts.Block
		case "map":
			opts.Map = ov.opts.Map
		case "guard":
			opts.Guard = ov.opts.Guard
		case "guard-close":
			opts.GuardClose = ov.opts.GuardClose
		case "offsets":
			opts.Offsets = ov.opts.Offsets
		case "duplicates":
			opts.Duplicates = ov.opts.Duplicates
		case "width":
			opts.Width = ov.opts.Width
		case "descriptions":
			opts.Descriptions = ov.opts.Descriptions
		}
	})
}

// The policy types implement flag.Value so they can be set from the command line.

func (gc *GuardClose) String() string { return string(*gc) }

func (gc *GuardClose) Set(value string) error {
	switch GuardClose(value) {
	case GuardOmit, GuardComment, GuardEmit:
		*gc = GuardClose(value)
		return nil
	}
	return &ErrOption{Name: "guard_close", Value: value}
}

func (om *OffsetMode) String() string { return string(*om) }

func (om *OffsetMode) Set(value string) error {
	switch OffsetMode(value) {
	case OffsetFixed, OffsetColumn:
		*om = OffsetMode(value)
		return nil
	}
	return &ErrOption{Name: "offsets", Value: value}
}

func (dp *Duplicates) String() string { return string(*dp) }

func (dp *Duplicates) Set(value string) error {
	switch Duplicates(value) {
	case DuplicatesAllow, DuplicatesReject:
		*dp = Duplicates(value)
		return nil
	}
	return &ErrOption{Name: "duplicates", Value: value}
}
