package services

import "testing"

func TestTipServiceCurrentIsStable(t *testing.T) {
	service := NewTipService()

	first := service.Current()
	second := service.Current()
	if first != second {
		t.Fatalf("Current changed between reads: %q then %q", first.Title, second.Title)
	}
}

func TestTipServiceNewTipAlwaysSwitches(t *testing.T) {
	service := NewTipService()

	for i := 0; i < 50; i++ {
		before := service.Current()
		after := service.NewTip()
		if before == after {
			t.Fatalf("NewTip returned the tip already shown: %q", after.Title)
		}
		if service.Current() != after {
			t.Fatal("NewTip did not make the picked tip current")
		}
	}
}
