package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/somtsp/geometry"
)

// Parse reads cities from r.
//
// Errors: ErrMalformed (wrapped with the offending line), ErrEmpty.
func Parse(r io.Reader) ([]geometry.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var cities []geometry.Point
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"x,y\", got %q", ErrMalformed, line, strings.Join(rec, ","))
		}
		p, err := parsePoint(rec[0], rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		cities = append(cities, p)
	}
	if len(cities) == 0 {
		return nil, ErrEmpty
	}
	return cities, nil
}

func parsePoint(xs, ys string) (geometry.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geometry.Point{}, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return geometry.Point{}, fmt.Errorf("non-finite coordinate %q,%q", xs, ys)
	}
	return geometry.Point{X: x, Y: y}, nil
}

// Load reads the instance file at path.
//
// Errors: ErrNoInstance, plus those of Parse.
func Load(path string) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoInstance, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseInstanceID validates a command-line instance identifier.
//
// Errors: ErrBadInstance.
func ParseInstanceID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid input", ErrBadInstance, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadInstance, id)
	}
	return id, nil
}

// InstancePath returns dir/example<id>.txt.
//
// Errors: ErrBadInstance when id <= 0.
func InstancePath(dir string, id int) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrBadInstance, id)
	}
	return filepath.Join(dir, "example"+strconv.Itoa(id)+".txt"), nil
}
