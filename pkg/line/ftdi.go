package line

// FTDIDriver is a placeholder for the upcoming FT232-style USB bitbang
// backend. It satisfies the Driver interface so higher level code can be
// wired up later once the MPSSE transport details are nailed down.
type FTDIDriver struct {
	Serial string
}

// NewFTDIDriver creates a stub instance associated with the provided device
// serial. The actual USB protocol is not implemented yet.
func NewFTDIDriver(serial string) *FTDIDriver {
	return &FTDIDriver{Serial: serial}
}

func (d *FTDIDriver) Name() string { return "ftdi" }

func (d *FTDIDriver) Open(_ int) (Line, error) {
	return nil, ErrNotImplemented
}

func (d *FTDIDriver) Close() error {
	return nil
}
