package components

import "testing"

func TestMeter_View(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		width     int
		want      string
	}{
		{"none completed", 0, 4, 8, "□□□□□□□□ 0/4 completed"},
		{"half", 2, 4, 8, "■■■■□□□□ 2/4 completed"},
		{"all", 3, 3, 6, "■■■■■■ 3/3 completed"},
		{"rounds down", 1, 3, 8, "■■□□□□□□ 1/3 completed"},
		{"empty tree", 0, 0, 8, "no tasks"},
		{"no bar", 1, 2, 0, "1/2 completed"},
		{"clamped above", 9, 2, 4, "■■■■ 2/2 completed"},
		{"clamped below", -1, 2, 4, "□□□□ 0/2 completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeter(tt.completed, tt.total, tt.width).View()
			if got != tt.want {
				t.Errorf("View() = %q, want %q", got, tt.want)
			}
		})
	}
}
