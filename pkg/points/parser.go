package points

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gosurvey/pkg/geometry"
)

// ErrSyntax is wrapped by every parse error
var ErrSyntax = errors.New("invalid point record")

// Parse reads a point file. Each non-empty line holds an optional station id
// followed by E N and an optional H, separated by whitespace, commas or
// semicolons. Lines starting with # are comments.
func Parse(filename string) (*PointSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ParseReader(file, name)
}

// ParseReader parses point records from r into a set with the given name
func ParseReader(reader io.Reader, name string) (*PointSet, error) {
	scanner := bufio.NewScanner(reader)
	set := NewPointSet(name)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		station, err := parseRecord(splitFields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		set.Add(station)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading points: %w", err)
	}

	return set, nil
}

// ParsePoint parses a single "E,N[,H]" coordinate as given on the command line
func ParsePoint(s string) (geometry.Vector3, error) {
	fields := splitFields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return geometry.Vector3{}, fmt.Errorf("%w: %q: want E,N or E,N,H", ErrSyntax, s)
	}
	values, err := parseFloats(fields)
	if err != nil {
		return geometry.Vector3{}, err
	}
	return toVector(values), nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
}

func parseRecord(fields []string) (Station, error) {
	var station Station

	// Four fields always start with an id. Otherwise a leading field that is
	// not a number is one, so a numeric id needs an explicit height.
	if len(fields) == 4 {
		station.ID = fields[0]
		fields = fields[1:]
	} else if len(fields) > 0 {
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			station.ID = fields[0]
			fields = fields[1:]
		}
	}

	if len(fields) < 2 || len(fields) > 3 {
		return Station{}, fmt.Errorf("%w: expected E N [H], got %d values", ErrSyntax, len(fields))
	}

	values, err := parseFloats(fields)
	if err != nil {
		return Station{}, err
	}
	station.Point = toVector(values)
	return station, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrSyntax, f)
		}
		values[i] = v
	}
	return values, nil
}

func toVector(values []float64) geometry.Vector3 {
	if len(values) == 2 {
		return geometry.NewVector2(values[0], values[1])
	}
	return geometry.NewVector3(values[0], values[1], values[2])
}
