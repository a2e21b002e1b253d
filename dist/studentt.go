/*
 * Copyright (c) 2024 AlexHild
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultSeed seeds the random source of distributions constructed
// without an explicit source.
const defaultSeed = 1

// StudentT represents the generalized (location-scale) Student's t
// distribution. Its support is the whole real line; degrees of
// freedom control the tail weight, and as Dof grows the distribution
// approaches Normal(location, scale). Dof = +Inf is accepted and
// treated as that normal limit.
//
// The distribution holds an exclusively-referenced random source.
// Concurrent Sample calls against the same instance must be
// serialized by the caller, since every draw mutates source state.
type StudentT struct {
	location float64
	scale    float64
	dof      float64
	src      rand.Source
	rnd      *rand.Rand
	// lax disables parameter validation for the life of the
	// instance; invalid parameters then commit unchecked and
	// surface as NaN results downstream.
	lax bool
}

// IsValidParameterSet reports whether (location, scale, dof) form a
// valid Student's t parameter set: scale and dof strictly positive
// and no NaN among the three.
func IsValidParameterSet(location, scale, dof float64) bool {
	return scale > 0 && dof > 0 && !math.IsNaN(location)
}

// NewStudentT returns a Student's t distribution with the given
// location, scale and degrees of freedom and a default-seeded random
// source. The parameters are validated before being stored.
func NewStudentT(location, scale, dof float64) (*StudentT, error) {
	return NewStudentTWithSource(location, scale, dof, rand.NewSource(defaultSeed))
}

// NewStudentTWithSource is NewStudentT with an explicit random
// source supplied by the caller.
func NewStudentTWithSource(location, scale, dof float64, src rand.Source) (*StudentT, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !IsValidParameterSet(location, scale, dof) {
		return nil, errors.Wrapf(ErrInvalidParameters,
			"location %v, scale %v, dof %v", location, scale, dof)
	}
	return &StudentT{
		location: location,
		scale:    scale,
		dof:      dof,
		src:      src,
		rnd:      rand.New(src),
	}, nil
}

// NewStudentTUnchecked returns a Student's t distribution that skips
// parameter validation, now and on every later mutation. Invalid
// parameters produce NaN densities and moments instead of errors.
func NewStudentTUnchecked(location, scale, dof float64) *StudentT {
	src := rand.NewSource(defaultSeed)
	return &StudentT{
		location: location,
		scale:    scale,
		dof:      dof,
		src:      src,
		rnd:      rand.New(src),
		lax:      true,
	}
}

// NewStandardStudentT returns the standard Student's t distribution
// with location 0, scale 1 and one degree of freedom.
func NewStandardStudentT() *StudentT {
	t, _ := NewStudentT(0, 1, 1)
	return t
}

// Location returns the location parameter.
func (t *StudentT) Location() float64 { return t.location }

// Scale returns the scale parameter.
func (t *StudentT) Scale() float64 { return t.scale }

// Dof returns the degrees of freedom.
func (t *StudentT) Dof() float64 { return t.dof }

// SetLocation sets the location parameter, re-validating the full
// parameter triple. On failure the previous state is kept.
func (t *StudentT) SetLocation(location float64) error {
	if !t.lax && !IsValidParameterSet(location, t.scale, t.dof) {
		return errors.Wrapf(ErrInvalidParameters, "cannot set location to %v", location)
	}
	t.location = location
	return nil
}

// SetScale sets the scale parameter, re-validating the full
// parameter triple. On failure the previous state is kept.
func (t *StudentT) SetScale(scale float64) error {
	if !t.lax && !IsValidParameterSet(t.location, scale, t.dof) {
		return errors.Wrapf(ErrInvalidParameters, "cannot set scale to %v", scale)
	}
	t.scale = scale
	return nil
}

// SetDof sets the degrees of freedom, re-validating the full
// parameter triple. On failure the previous state is kept.
func (t *StudentT) SetDof(dof float64) error {
	if !t.lax && !IsValidParameterSet(t.location, t.scale, dof) {
		return errors.Wrapf(ErrInvalidParameters, "cannot set dof to %v", dof)
	}
	t.dof = dof
	return nil
}

// SetSource replaces the random source. A nil source is rejected
// regardless of the validation policy.
func (t *StudentT) SetSource(src rand.Source) error {
	if src == nil {
		return ErrNilSource
	}
	t.src = src
	t.rnd = rand.New(src)
	return nil
}

// Mean returns the mean of the distribution, which equals location.
func (t *StudentT) Mean() float64 { return t.location }

// Mode returns the mode of the distribution, which equals location.
func (t *StudentT) Mode() float64 { return t.location }

// Median returns the median of the distribution, which equals
// location.
func (t *StudentT) Median() float64 { return t.location }

// Minimum returns the lower bound of the support, -Inf.
func (t *StudentT) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper bound of the support, +Inf.
func (t *StudentT) Maximum() float64 { return math.Inf(1) }

// Variance returns scale² · dof/(dof-2) for dof > 2, +Inf for
// 1 < dof <= 2, and ErrUndefinedMoment for dof <= 1 where the second
// moment does not exist.
func (t *StudentT) Variance() (float64, error) {
	switch {
	case math.IsInf(t.dof, 1):
		return t.scale * t.scale, nil
	case t.dof > 2:
		return t.scale * t.scale * t.dof / (t.dof - 2), nil
	case t.dof > 1:
		return math.Inf(1), nil
	default:
		return 0, errors.Wrapf(ErrUndefinedMoment, "variance requires dof > 1, have %v", t.dof)
	}
}

// StdDev returns scale · sqrt(dof/(dof-2)) for dof > 2, +Inf for
// 1 < dof <= 2, and ErrUndefinedMoment for dof <= 1.
func (t *StudentT) StdDev() (float64, error) {
	switch {
	case math.IsInf(t.dof, 1):
		return t.scale, nil
	case t.dof > 2:
		return t.scale * math.Sqrt(t.dof/(t.dof-2)), nil
	case t.dof > 1:
		return math.Inf(1), nil
	default:
		return 0, errors.Wrapf(ErrUndefinedMoment, "standard deviation requires dof > 1, have %v", t.dof)
	}
}

// Skewness returns 0 for dof > 3; the third moment does not exist
// otherwise and ErrUndefinedMoment is returned.
func (t *StudentT) Skewness() (float64, error) {
	if t.dof > 3 {
		return 0, nil
	}
	return 0, errors.Wrapf(ErrUndefinedMoment, "skewness requires dof > 3, have %v", t.dof)
}

// Entropy returns the differential entropy
//
//	(ν+1)/2 · (ψ((ν+1)/2) - ψ(ν/2)) + ln(√ν · B(ν/2, 1/2)) + ln(scale)
//
// where ψ is the digamma function and B the Beta function. Entropy
// is defined for every valid parameter set; invalid parameters on an
// unchecked instance yield NaN.
func (t *StudentT) Entropy() float64 {
	if !IsValidParameterSet(t.location, t.scale, t.dof) {
		return math.NaN()
	}
	if math.IsInf(t.dof, 1) {
		return 0.5*math.Log(2*math.Pi*math.E) + math.Log(t.scale)
	}
	v := t.dof
	logBeta := lgamma(v/2) + lgamma(0.5) - lgamma((v+1)/2)
	h := (v+1)/2*(mathext.Digamma((v+1)/2)-mathext.Digamma(v/2)) +
		0.5*math.Log(v) + logBeta
	return h + math.Log(t.scale)
}

// Density returns the probability density at x. It is computed as
// exp(DensityLn(x)) so that large degrees of freedom do not overflow
// the Gamma factors.
func (t *StudentT) Density(x float64) float64 {
	return math.Exp(t.DensityLn(x))
}

// DensityLn returns the natural logarithm of the density at x,
// computed directly from log-Gamma to stay accurate far in the tails.
func (t *StudentT) DensityLn(x float64) float64 {
	return logDensity(x, t.location, t.scale, t.dof)
}

// CumulativeDistribution returns P(X <= x), expressed through the
// regularized incomplete Beta function:
//
//	1 - I(ν/2, 1/2; ν/(ν+d²))/2  for x >= location
//	    I(ν/2, 1/2; ν/(ν+d²))/2  for x <  location
//
// with d = (x - location)/scale.
func (t *StudentT) CumulativeDistribution(x float64) float64 {
	if !IsValidParameterSet(t.location, t.scale, t.dof) {
		// The incomplete Beta evaluation would panic on a
		// nonpositive dof from an unchecked instance.
		return math.NaN()
	}
	d := (x - t.location) / t.scale
	if math.IsNaN(d) {
		return math.NaN()
	}
	if math.IsInf(t.dof, 1) {
		// Normal limit.
		return 0.5 * math.Erfc(-d/math.Sqrt2)
	}
	if math.IsInf(d, 0) {
		if d > 0 {
			return 1
		}
		return 0
	}
	p := 0.5 * mathext.RegIncBeta(t.dof/2, 0.5, t.dof/(t.dof+d*d))
	if d >= 0 {
		return 1 - p
	}
	return p
}

// Sample draws one random value from the distribution.
func (t *StudentT) Sample() (float64, error) {
	if !t.lax && !IsValidParameterSet(t.location, t.scale, t.dof) {
		return 0, errors.Wrap(ErrInvalidParameters, "cannot sample")
	}
	return draw(t.rnd, t.location, t.scale, t.dof), nil
}

// SampleStudentT draws one random value of the Student's t
// distribution with the given parameters, using the supplied source.
// Parameters are always validated.
func SampleStudentT(src rand.Source, location, scale, dof float64) (float64, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	if !IsValidParameterSet(location, scale, dof) {
		return 0, errors.Wrapf(ErrInvalidParameters,
			"location %v, scale %v, dof %v", location, scale, dof)
	}
	return draw(rand.New(src), location, scale, dof), nil
}

// String returns a diagnostic description of the distribution. It is
// not a serialization format.
func (t *StudentT) String() string {
	return fmt.Sprintf("StudentT(Location = %v, Scale = %v, DoF = %v)",
		t.location, t.scale, t.dof)
}

// draw samples location + scale·Z/sqrt(V/ν) with Z standard normal
// and V chi-squared with ν degrees of freedom. The chi-squared
// variate is a Gamma(ν/2, rate 1/2) draw from the same source.
// Invalid parameters yield NaN; without the guard the Gamma sampler
// does not terminate on NaN shape values.
func draw(rnd *rand.Rand, location, scale, dof float64) float64 {
	if !IsValidParameterSet(location, scale, dof) {
		return math.NaN()
	}
	z := rnd.NormFloat64()
	if math.IsInf(dof, 1) {
		return location + scale*z
	}
	v := distuv.Gamma{Alpha: dof / 2, Beta: 0.5, Src: rnd}.Rand()
	return location + scale*z/math.Sqrt(v/dof)
}

func logDensity(x, location, scale, dof float64) float64 {
	d := (x - location) / scale
	if math.IsInf(dof, 1) {
		// Normal limit of the density.
		return -0.5*d*d - 0.5*math.Log(2*math.Pi) - math.Log(scale)
	}
	return lgamma((dof+1)/2) - lgamma(dof/2) -
		0.5*(dof+1)*math.Log1p(d*d/dof) -
		0.5*math.Log(dof*math.Pi) - math.Log(scale)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
