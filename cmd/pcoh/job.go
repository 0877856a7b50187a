// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pershom/builder"
	"github.com/katalvlaran/pershom/cohomology"
	"github.com/katalvlaran/pershom/cubical"
	"github.com/katalvlaran/pershom/field"
	"github.com/katalvlaran/pershom/filtered"
	"github.com/katalvlaran/pershom/simplex"
	"github.com/katalvlaran/pershom/unionfind"
)

var (
	// ErrComplexSource indicates a job file without exactly one complex section.
	ErrComplexSource = errors.New("pcoh: job needs exactly one of simplices, cubical, flag")

	// ErrInvalidJob wraps every validation failure of a job file.
	ErrInvalidJob = errors.New("pcoh: invalid job file")
)

// JobFile is the YAML description of one computation.
type JobFile struct {
	Name           string          `yaml:"name"`
	Characteristic uint32          `yaml:"characteristic" validate:"omitempty,prime"`
	MinPersistence *float64        `yaml:"min_persistence" validate:"omitempty,gte=0"`
	Essentials     *bool           `yaml:"essentials"`
	TieBreak       string          `yaml:"tie_break" validate:"omitempty,oneof=larger-key smaller-key"`
	Simplices      []SimplexEntry  `yaml:"simplices" validate:"omitempty,dive"`
	Cubical        *CubicalSection `yaml:"cubical"`
	Flag           *FlagSection    `yaml:"flag"`
}

// SimplexEntry is one simplex; its faces are added with the same value
// unless listed with a smaller one.
type SimplexEntry struct {
	Vertices []int   `yaml:"vertices" validate:"required,min=1,dive,gte=0"`
	Value    float64 `yaml:"value"`
}

// CubicalSection is a bitmap of top-dimensional values in row-major order,
// first direction fastest.
type CubicalSection struct {
	Sizes    []int     `yaml:"sizes" validate:"required,min=1,dive,gte=1"`
	Values   []float64 `yaml:"values" validate:"required"`
	Periodic []bool    `yaml:"periodic"`
}

// FlagSection is a flag (Vietoris-Rips) complex from points or a distance matrix.
type FlagSection struct {
	Points       [][]float64 `yaml:"points" validate:"required_without=Distances"`
	Distances    [][]float64 `yaml:"distances" validate:"required_without=Points"`
	MaxDimension int         `yaml:"max_dimension" validate:"gte=0,lte=10"`
	MaxValue     float64     `yaml:"max_value" validate:"gte=0"`
}

// newValidator returns a validator with the "prime" tag registered.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("prime", func(fl validator.FieldLevel) bool {
		return field.IsPrime(uint32(fl.Field().Uint()))
	})
	if err != nil {
		return nil, fmt.Errorf("pcoh: register prime tag: %w", err)
	}

	return v, nil
}

// loadJob reads and validates a job file. The job name defaults to the file
// name without extension.
func loadJob(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadJob: %w", err)
	}
	job, err := parseJob(data)
	if err != nil {
		return nil, fmt.Errorf("loadJob: %s: %w", path, err)
	}
	if job.Name == "" {
		job.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return job, nil
}

// parseJob decodes and validates YAML job data.
func parseJob(data []byte) (*JobFile, error) {
	var job JobFile
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	v, err := newValidator()
	if err != nil {
		return nil, err
	}
	if err := job.validate(v); err != nil {
		return nil, err
	}

	return &job, nil
}

// validate checks field constraints and that exactly one complex is given.
func (j *JobFile) validate(v *validator.Validate) error {
	if err := v.Struct(j); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	sources := 0
	if len(j.Simplices) > 0 {
		sources++
	}
	if j.Cubical != nil {
		sources++
	}
	if j.Flag != nil {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("%w: %d sections: %w", ErrInvalidJob, sources, ErrComplexSource)
	}

	return nil
}

// build constructs the complex with an initialized filtration.
func (j *JobFile) build() (filtered.Complex, error) {
	switch {
	case j.Cubical != nil:
		return cubical.New(j.Cubical.Sizes, j.Cubical.Values, j.Cubical.Periodic)
	case j.Flag != nil:
		dist := j.Flag.Distances
		if dist == nil {
			dist = builder.EuclideanDistances(j.Flag.Points)
		}
		return builder.BuildComplex(nil, builder.Flag(dist, j.Flag.MaxDimension, j.Flag.MaxValue))
	default:
		tree := simplex.New()
		for i, s := range j.Simplices {
			if _, err := tree.Insert(s.Vertices, s.Value); err != nil {
				return nil, fmt.Errorf("build: simplex %d: %w", i, err)
			}
		}
		tree.InitializeFiltration()
		return tree, nil
	}
}

// options translates the job settings into engine options.
func (j *JobFile) options() []cohomology.Option {
	var opts []cohomology.Option
	if j.Characteristic != 0 {
		opts = append(opts, cohomology.WithCharacteristic(j.Characteristic))
	}
	if j.Essentials != nil {
		opts = append(opts, cohomology.WithEssentials(*j.Essentials))
	}
	if j.TieBreak == unionfind.TieBreakSmallerKey.String() {
		opts = append(opts, cohomology.WithTieBreak(unionfind.TieBreakSmallerKey))
	}

	return opts
}

// threshold returns the minimum persistence, 0 when unset.
func (j *JobFile) threshold() float64 {
	if j.MinPersistence == nil {
		return 0
	}

	return *j.MinPersistence
}
