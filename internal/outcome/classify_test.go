package outcome

import "testing"

func f(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		deltaMastery  *float64
		deltaAccuracy *float64
		want          string
	}{
		{"accuracy improved", f(0.0), f(0.06), SuccessTrue},
		{"no movement", f(0.0), f(0.0), SuccessPartial},
		{"both degraded", f(-0.10), f(-0.10), SuccessFalse},
		{"mastery improved alone", f(0.08), f(-0.02), SuccessTrue},
		{"only one degraded", f(-0.10), f(0.0), SuccessPartial},
		{"true boundary inclusive", f(0.05), f(0.0), SuccessTrue},
		{"false boundary inclusive", f(-0.05), f(-0.05), SuccessFalse},
		{"just under true boundary", f(0.0499), f(0.0), SuccessPartial},
		{"nil mastery, accuracy up", nil, f(0.06), SuccessTrue},
		{"both nil", nil, nil, SuccessPartial},
		{"nil accuracy treated as zero", f(-0.10), nil, SuccessPartial},
	}
	for _, tt := range tests {
		if got := Classify(tt.deltaMastery, tt.deltaAccuracy); got != tt.want {
			t.Errorf("%s: Classify(%v, %v) = %q, want %q",
				tt.name, tt.deltaMastery, tt.deltaAccuracy, got, tt.want)
		}
	}
}
