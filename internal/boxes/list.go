package boxes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/dealgame/internal/models"
	"github.com/KirkDiggler/dealgame/internal/random"
)

// ListError is a custom error type for box list errors
type ListError string

// Error implements the error interface
func (e ListError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is returned when an index does not name a box in the list
const ErrIndexOutOfRange ListError = "box index out of range"

// List is a fixed-size, ordered set of boxes
type List struct {
	boxes []*models.Box
}

// New creates a list where box i holds values[i]
func New(values []float64) (*List, error) {
	boxes := make([]*models.Box, len(values))
	for i, value := range values {
		box, err := models.NewBox(value)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		boxes[i] = box
	}

	return &List{
		boxes: boxes,
	}, nil
}

// Len returns the number of boxes in the list
func (l *List) Len() int {
	return len(l.boxes)
}

// Value returns the value of the box at index
func (l *List) Value(index int) (float64, error) {
	box, err := l.box(index)
	if err != nil {
		return 0, err
	}
	return box.Value(), nil
}

// IsOpen reports whether the box at index has been opened
func (l *List) IsOpen(index int) (bool, error) {
	box, err := l.box(index)
	if err != nil {
		return false, err
	}
	return box.IsOpen(), nil
}

// Open opens the box at index
func (l *List) Open(index int) error {
	box, err := l.box(index)
	if err != nil {
		return err
	}
	box.Open()
	return nil
}

// AverageValueOfUnopenedBoxes returns the mean value of the boxes still closed,
// or 0 when every box is open
func (l *List) AverageValueOfUnopenedBoxes() float64 {
	total := 0.0
	count := 0

	for _, box := range l.boxes {
		if !box.IsOpen() {
			total += box.Value()
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// UnopenedIndices returns the indices of the closed boxes in list order
func (l *List) UnopenedIndices() []int {
	indices := make([]int, 0, len(l.boxes))
	for i, box := range l.boxes {
		if !box.IsOpen() {
			indices = append(indices, i)
		}
	}
	return indices
}

// UnopenedValues returns the values still in play, sorted ascending
func (l *List) UnopenedValues() []float64 {
	values := make([]float64, 0, len(l.boxes))
	for _, box := range l.boxes {
		if !box.IsOpen() {
			values = append(values, box.Value())
		}
	}
	sort.Float64s(values)
	return values
}

// Shuffle performs exactly numberOfSwaps swaps of two distinct random boxes.
// The arrangement is only close to uniform for large swap counts; it matches
// historical game traces. Lists with fewer than two boxes are left untouched.
func (l *List) Shuffle(src random.Source, numberOfSwaps int) {
	n := len(l.boxes)
	if n < 2 {
		return
	}

	for i := 0; i < numberOfSwaps; i++ {
		a := src.IntN(n)
		b := a
		for b == a {
			b = src.IntN(n)
		}
		l.boxes[a], l.boxes[b] = l.boxes[b], l.boxes[a]
	}
}

// ShuffleUniform arranges the boxes in a uniformly random permutation (Fisher-Yates)
func (l *List) ShuffleUniform(src random.Source) {
	for i := len(l.boxes) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		l.boxes[i], l.boxes[j] = l.boxes[j], l.boxes[i]
	}
}

// String renders each box on its own line
func (l *List) String() string {
	var sb strings.Builder
	for _, box := range l.boxes {
		sb.WriteString(box.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (l *List) box(index int) (*models.Box, error) {
	if index < 0 || index >= len(l.boxes) {
		return nil, fmt.Errorf("%w: %d not in 0..%d", ErrIndexOutOfRange, index, len(l.boxes)-1)
	}
	return l.boxes[index], nil
}
