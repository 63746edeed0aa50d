package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrange(t *testing.T) {
	t.Run("flexible tabs share the strip, remainder from the start", func(t *testing.T) {
		res := Compute(Input{Mode: Fixed, Gravity: Fill, StripWidth: 100, Natural: []int{1, 1, 1}})

		got := Arrange(res, 100)

		assert.Equal(t, []Bounds{{0, 34}, {34, 67}, {67, 100}}, got)
	})

	t.Run("centered fixed widths", func(t *testing.T) {
		res := Compute(Input{Mode: Fixed, Gravity: Center, StripWidth: 300, Natural: []int{40, 80, 60}, Gutter: 16})

		got := Arrange(res, 300)

		assert.Equal(t, []Bounds{{30, 110}, {110, 190}, {190, 270}}, got)
	})

	t.Run("scrollable tabs laid out sequentially after padding", func(t *testing.T) {
		res := Compute(Input{Mode: Scrollable, Natural: []int{30, 50}, ContentInset: 10})

		got := Arrange(res, 40)

		assert.Equal(t, []Bounds{{10, 40}, {40, 90}}, got)
		assert.Equal(t, 90, ContentWidth(got))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Arrange(Result{}, 100))
		assert.Equal(t, 0, ContentWidth(nil))
	})
}
