package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/wlbtid/calculator/internal/calculation"
	"github.com/wlbtid/calculator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunProjection(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if res.IsEmpty() {
		fmt.Println("no projection data")
		return
	}

	// Header
	fmt.Println("Year,Age,WL_Cash,WL_DeathBenefit,BTID_Investment,BTID_Estate,Term,Invest_minus_Cash,WLDB_minus_Estate")

	gaps := calc.BreakevenGaps(res.WholeLifeLedger, res.BTIDLedger)
	for i, g := range gaps {
		wl, btid := res.WholeLifeLedger[i], res.BTIDLedger[i]
		fmt.Printf("%d,%d,%s,%s,%s,%s,%t,%s,%s\n", g.Year, g.Age,
			wl.CashValue.StringFixed(0), wl.DeathBenefit.StringFixed(0),
			btid.InvestmentBalance.StringFixed(0), btid.TotalEstateValue.StringFixed(0), btid.TermActive,
			g.InvestmentMinusCash.StringFixed(0), g.DeathBenefitMinusEstate.StringFixed(0))
	}

	// Sign changes from negative to non-negative are the crossovers
	for i := 1; i < len(gaps); i++ {
		if gaps[i-1].InvestmentMinusCash.IsNegative() && !gaps[i].InvestmentMinusCash.IsNegative() {
			fmt.Printf("Investment catches cash value: year %d (age %d)\n", gaps[i].Year, gaps[i].Age)
		}
		if gaps[i-1].DeathBenefitMinusEstate.IsNegative() && !gaps[i].DeathBenefitMinusEstate.IsNegative() {
			fmt.Printf("WL death benefit catches BTID estate: year %d (age %d)\n", gaps[i].Year, gaps[i].Age)
		}
	}

	fmt.Printf("\nBreakevens: investment=%+v death_benefit=%+v\n",
		res.Breakevens.InvestmentVsCashValue, res.Breakevens.WLDeathBenefitVsInvestment)
}
