package cheby2

import "github.com/cwbudde/algo-iir/dsp/filter/cheby2/design"

// LowPass is a Chebyshev Type II lowpass with capacity C.
type LowPass[C Capacity] struct{ filter }

// NewLowPass returns an unconfigured lowpass.
func NewLowPass[C Capacity]() *LowPass[C] {
	return &LowPass[C]{newFilter(design.ShapeLowPass, maxOrder[C]())}
}

// Setup designs the filter at full capacity. Frequencies at and above
// cutoff are attenuated by at least stopBandDB.
func (f *LowPass[C]) Setup(sampleRate, cutoff, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoff, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *LowPass[C]) SetupOrder(order int, sampleRate, cutoff, stopBandDB float64) error {
	return f.setup(order, design.LowPassParams{
		Order: order, SampleRate: sampleRate, Cutoff: cutoff, StopBandDB: stopBandDB,
	})
}

// HighPass is a Chebyshev Type II highpass with capacity C.
type HighPass[C Capacity] struct{ filter }

// NewHighPass returns an unconfigured highpass.
func NewHighPass[C Capacity]() *HighPass[C] {
	return &HighPass[C]{newFilter(design.ShapeHighPass, maxOrder[C]())}
}

// Setup designs the filter at full capacity. Frequencies at and below
// cutoff are attenuated by at least stopBandDB.
func (f *HighPass[C]) Setup(sampleRate, cutoff, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoff, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *HighPass[C]) SetupOrder(order int, sampleRate, cutoff, stopBandDB float64) error {
	return f.setup(order, design.HighPassParams{
		Order: order, SampleRate: sampleRate, Cutoff: cutoff, StopBandDB: stopBandDB,
	})
}

// BandPass is a Chebyshev Type II bandpass with capacity C. Its chain
// holds 2*C poles.
type BandPass[C Capacity] struct{ filter }

// NewBandPass returns an unconfigured bandpass.
func NewBandPass[C Capacity]() *BandPass[C] {
	return &BandPass[C]{newFilter(design.ShapeBandPass, maxOrder[C]())}
}

// Setup designs the filter at full capacity.
func (f *BandPass[C]) Setup(sampleRate, center, width, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, center, width, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *BandPass[C]) SetupOrder(order int, sampleRate, center, width, stopBandDB float64) error {
	return f.setup(order, design.BandPassParams{
		Order: order, SampleRate: sampleRate, Center: center, Width: width, StopBandDB: stopBandDB,
	})
}

// BandStop is a Chebyshev Type II bandstop with capacity C. Its chain
// holds 2*C poles.
type BandStop[C Capacity] struct{ filter }

// NewBandStop returns an unconfigured bandstop.
func NewBandStop[C Capacity]() *BandStop[C] {
	return &BandStop[C]{newFilter(design.ShapeBandStop, maxOrder[C]())}
}

// Setup designs the filter at full capacity.
func (f *BandStop[C]) Setup(sampleRate, center, width, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, center, width, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *BandStop[C]) SetupOrder(order int, sampleRate, center, width, stopBandDB float64) error {
	return f.setup(order, design.BandStopParams{
		Order: order, SampleRate: sampleRate, Center: center, Width: width, StopBandDB: stopBandDB,
	})
}

// LowShelf is a Chebyshev Type II low shelf with capacity C.
type LowShelf[C Capacity] struct{ filter }

// NewLowShelf returns an unconfigured low shelf.
func NewLowShelf[C Capacity]() *LowShelf[C] {
	return &LowShelf[C]{newFilter(design.ShapeLowShelf, maxOrder[C]())}
}

// Setup designs the filter at full capacity.
func (f *LowShelf[C]) Setup(sampleRate, cutoff, gainDB, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoff, gainDB, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *LowShelf[C]) SetupOrder(order int, sampleRate, cutoff, gainDB, stopBandDB float64) error {
	return f.setup(order, design.LowShelfParams{
		Order: order, SampleRate: sampleRate, Cutoff: cutoff, GainDB: gainDB, StopBandDB: stopBandDB,
	})
}

// HighShelf is a Chebyshev Type II high shelf with capacity C.
type HighShelf[C Capacity] struct{ filter }

// NewHighShelf returns an unconfigured high shelf.
func NewHighShelf[C Capacity]() *HighShelf[C] {
	return &HighShelf[C]{newFilter(design.ShapeHighShelf, maxOrder[C]())}
}

// Setup designs the filter at full capacity.
func (f *HighShelf[C]) Setup(sampleRate, cutoff, gainDB, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoff, gainDB, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *HighShelf[C]) SetupOrder(order int, sampleRate, cutoff, gainDB, stopBandDB float64) error {
	return f.setup(order, design.HighShelfParams{
		Order: order, SampleRate: sampleRate, Cutoff: cutoff, GainDB: gainDB, StopBandDB: stopBandDB,
	})
}

// BandShelf is a Chebyshev Type II band shelf with capacity C. Its chain
// holds 2*C poles.
type BandShelf[C Capacity] struct{ filter }

// NewBandShelf returns an unconfigured band shelf.
func NewBandShelf[C Capacity]() *BandShelf[C] {
	return &BandShelf[C]{newFilter(design.ShapeBandShelf, maxOrder[C]())}
}

// Setup designs the filter at full capacity.
func (f *BandShelf[C]) Setup(sampleRate, center, width, gainDB, stopBandDB float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, center, width, gainDB, stopBandDB)
}

// SetupOrder designs the filter with the given order, 1 <= order <= capacity.
func (f *BandShelf[C]) SetupOrder(order int, sampleRate, center, width, gainDB, stopBandDB float64) error {
	return f.setup(order, design.BandShelfParams{
		Order: order, SampleRate: sampleRate, Center: center, Width: width, GainDB: gainDB, StopBandDB: stopBandDB,
	})
}
