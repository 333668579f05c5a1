package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	sim "github.com/collide-sim/collide-sim/sim"
)

// Scenario is a complete run description: optional run parameters plus the
// initial particle records. The YAML form carries all three; the classic
// text form carries only particles.
type Scenario struct {
	Horizon   float64            `yaml:"horizon"`
	RedrawHz  float64            `yaml:"redrawHz"`
	Particles []sim.ParticleSpec `yaml:"particles"`
}

// LoadScenario reads a particle configuration file, dispatching on
// extension: .yaml/.yml is a Scenario document, anything else is the
// classic whitespace text format.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLScenario(f)
	default:
		return parseTextScenario(f)
	}
}

// parseYAMLScenario decodes a Scenario YAML document.
func parseYAMLScenario(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	if len(scenario.Particles) == 0 {
		return nil, fmt.Errorf("scenario contains no particles")
	}
	return &scenario, nil
}

// parseTextScenario reads the classic text format: a particle count
// followed by one 9-tuple per particle
// (x y vx vy radius mass r g b), whitespace-separated. Blank lines and
// lines starting with '#' are ignored.
func parseTextScenario(r io.Reader) (*Scenario, error) {
	fields, err := textFields(r)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty particle file")
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("particle count %q: %w", fields[0], err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("particle count must be positive, got %d", n)
	}

	const perRecord = 9
	values := fields[1:]
	if len(values) != n*perRecord {
		return nil, fmt.Errorf("expected %d values for %d particles, got %d", n*perRecord, n, len(values))
	}

	specs := make([]sim.ParticleSpec, 0, n)
	for i := 0; i < n; i++ {
		rec := values[i*perRecord : (i+1)*perRecord]
		spec, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return &Scenario{Particles: specs}, nil
}

// textFields tokenizes the input, dropping blank lines and '#' comments.
func textFields(r io.Reader) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = append(fields, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read particle file: %w", err)
	}
	return fields, nil
}

// parseRecord converts one 9-field record into a ParticleSpec.
func parseRecord(rec []string) (sim.ParticleSpec, error) {
	var spec sim.ParticleSpec
	reals := []struct {
		name string
		dst  *float64
	}{
		{"x", &spec.X}, {"y", &spec.Y},
		{"vx", &spec.VX}, {"vy", &spec.VY},
		{"radius", &spec.Radius}, {"mass", &spec.Mass},
	}
	for i, f := range reals {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return sim.ParticleSpec{}, fmt.Errorf("field %s %q: %w", f.name, rec[i], err)
		}
		*f.dst = v
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"r", &spec.R}, {"g", &spec.G}, {"b", &spec.B},
	}
	for i, f := range ints {
		v, err := strconv.Atoi(rec[6+i])
		if err != nil {
			return sim.ParticleSpec{}, fmt.Errorf("field %s %q: %w", f.name, rec[6+i], err)
		}
		*f.dst = v
	}
	return spec, nil
}
