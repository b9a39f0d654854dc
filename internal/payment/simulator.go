package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"matrace_backend/internal/models"
)

// ErrUnsupportedMethod is returned for a payment method the simulator does
// not know. No simulated delay happens in that case.
var ErrUnsupportedMethod = errors.New("unsupported payment method")

// methodStub describes one simulated Czech payment gateway.
type methodStub struct {
	Name        string
	Description string
	Prefix      string
	Delay       time.Duration
	FailureRate float64 // probability of a declined authorization
	SuccessMsg  string
	FailureMsg  string
}

var stubs = map[string]methodStub{
	models.PaymentComgate: {
		Name:        "Comgate",
		Description: "Karta, internetové bankovnictví",
		Prefix:      "CG",
		Delay:       2 * time.Second,
		FailureRate: 0.10,
		SuccessMsg:  "Platba úspěšně dokončena",
		FailureMsg:  "Platba se nezdařila",
	},
	models.PaymentDobirka: {
		Name:        "Dobírka",
		Description: "Platba při převzetí",
		Prefix:      "DB",
		Delay:       1 * time.Second,
		FailureRate: 0, // no funds move at order time
		SuccessMsg:  "Objednávka připravena k odběru s platbou dobírkou",
	},
	models.PaymentCard: {
		Name:        "Platební karta",
		Description: "Visa, Mastercard",
		Prefix:      "CARD",
		Delay:       3 * time.Second,
		FailureRate: 0.15,
		SuccessMsg:  "Platba kartou úspěšně dokončena",
		FailureMsg:  "Platba kartou byla odmítnuta",
	},
	models.PaymentGooglePay: {
		Name:        "Google Pay",
		Description: "Rychlá mobilní platba",
		Prefix:      "GP",
		Delay:       1500 * time.Millisecond,
		FailureRate: 0.05,
		SuccessMsg:  "Google Pay platba úspěšná",
		FailureMsg:  "Google Pay platba se nezdařila",
	},
}

// MethodInfo is what the storefront needs to render a payment option.
type MethodInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListMethods returns the supported payment methods in display order.
func ListMethods() []MethodInfo {
	order := []string{models.PaymentComgate, models.PaymentDobirka, models.PaymentCard, models.PaymentGooglePay}
	infos := make([]MethodInfo, 0, len(order))
	for _, code := range order {
		stub := stubs[code]
		infos = append(infos, MethodInfo{Code: code, Name: stub.Name, Description: stub.Description})
	}
	return infos
}

// Simulator stands in for the real payment gateways. Randomness, clock and
// delay are injectable so tests stay deterministic.
type Simulator struct {
	rng   *rand.Rand
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

func NewSimulator() *Simulator {
	return NewSeededSimulator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSeededSimulator builds a simulator over a caller-owned random source.
func NewSeededSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng, now: time.Now, sleep: sleepCtx}
}

// WithClock overrides the clock and delay hooks. Tests use an instant sleep.
func (s *Simulator) WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) *Simulator {
	s.now = now
	s.sleep = sleep
	return s
}

// Authorize simulates one payment attempt for the draft. Every attempt that
// succeeds gets a freshly generated transaction id; a declined attempt
// carries no id at all.
func (s *Simulator) Authorize(ctx context.Context, method string, draft models.OrderDraft) (models.PaymentResult, error) {
	stub, ok := stubs[method]
	if !ok {
		return models.PaymentResult{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	if err := s.sleep(ctx, stub.Delay); err != nil {
		return models.PaymentResult{}, err
	}

	success := stub.FailureRate == 0 || s.rng.Float64() > stub.FailureRate

	result := models.PaymentResult{
		Success: success,
		Method:  method,
	}
	if success {
		result.TransactionID = s.transactionID(stub.Prefix)
		result.Message = stub.SuccessMsg
	} else {
		result.Message = stub.FailureMsg
	}

	log.Printf("💳 Payment processed via %s: success=%v amount=%.2f", method, success, draft.TotalPrice)
	return result, nil
}

// transactionID builds "<PREFIX>_<unix millis>_<9 base36 chars>".
func (s *Simulator) transactionID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, s.now().UnixMilli(), s.randBase36(9))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (s *Simulator) randBase36(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = base36[s.rng.Intn(len(base36))]
	}
	return string(buf)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
