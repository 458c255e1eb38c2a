package engine

import (
	"fmt"
	"math"

	"github.com/fbarros/fatura/internal/common"
	"github.com/fbarros/fatura/internal/model"
)

// SimulateInstallments computes a fixed-installment plan. A zero monthly
// rate divides the principal flat with no interest; a positive rate uses
// standard fixed-installment (Price table) amortization. The rate is a
// fraction: 0.02 means 2% per month.
func (a *Analyzer) SimulateInstallments(principal float64, n int, monthlyRate float64) (model.InstallmentPlan, error) {
	if n <= 0 {
		return model.InstallmentPlan{}, fmt.Errorf("%w: installment count must be positive, got %d", common.ErrInvalidInput, n)
	}
	if principal <= 0 {
		return model.InstallmentPlan{}, fmt.Errorf("%w: principal must be positive, got %.2f", common.ErrInvalidInput, principal)
	}
	if monthlyRate < 0 {
		return model.InstallmentPlan{}, fmt.Errorf("%w: monthly rate cannot be negative, got %.4f", common.ErrInvalidInput, monthlyRate)
	}

	var installment, totalPaid, totalInterest float64
	if monthlyRate > 0 {
		factor := math.Pow(1+monthlyRate, float64(n))
		installment = principal * (monthlyRate * factor) / (factor - 1)
		totalPaid = installment * float64(n)
		totalInterest = totalPaid - principal
	} else {
		installment = principal / float64(n)
		totalPaid = principal
	}

	return model.InstallmentPlan{
		Principal:         principal,
		Installments:      n,
		MonthlyRate:       monthlyRate,
		InstallmentAmount: round2(installment),
		TotalPaid:         round2(totalPaid),
		TotalInterest:     round2(totalInterest),
	}, nil
}
