package attenuator_test

import (
	"fmt"

	"github.com/edp1096/toy-attenuator/pkg/attenuator"
	"github.com/edp1096/toy-attenuator/pkg/eseries"
)

func ExampleDesign() {
	cfg := attenuator.DefaultConfig()
	cfg.Stages = 4
	cfg.Series = eseries.E24

	res, err := attenuator.Design(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range res.Records() {
		fmt.Printf("%d %s %s %s\n", r.Index, r.Top, r.Bottom, r.NominalDb)
	}
	fmt.Println(res.Summary().Positions, "positions")
	// Output:
	// 1 560R 160k 0.5 dB
	// 2 1.1k 82k 1 dB
	// 3 2.2k 39k 2 dB
	// 4 3.9k 18k 4 dB
	// 16 positions
}
