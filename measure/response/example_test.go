package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/cheby2"
	"github.com/cwbudde/algo-iir/measure/response"
)

func ExampleAnalyzer_MagnitudeDBAt() {
	lp := cheby2.NewLowPass[cheby2.Order4]()
	if err := lp.Setup(48000, 1000, 40); err != nil {
		panic(err)
	}

	a, err := response.NewAnalyzer(48000, response.WithFFTSize(4096))
	if err != nil {
		panic(err)
	}

	db, err := a.MagnitudeDBAt(lp, 3000, 12000)
	if err != nil {
		panic(err)
	}

	fmt.Println("3 kHz at least 40 dB down:", db[0] <= -40)
	fmt.Println("12 kHz at least 40 dB down:", db[1] <= -40)
	// Output:
	// 3 kHz at least 40 dB down: true
	// 12 kHz at least 40 dB down: true
}
