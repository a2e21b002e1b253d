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
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Samples returns an unbounded lazy stream of independent draws from
// the distribution. Nothing is buffered; each element is produced on
// demand by the single-draw algorithm, and consumers take a finite
// prefix by breaking out of the range loop. Ranging over the same
// sequence again restarts it with fresh draws from the shared source.
func (t *StudentT) Samples() (iter.Seq[float64], error) {
	if !t.lax && !IsValidParameterSet(t.location, t.scale, t.dof) {
		return nil, errors.Wrap(ErrInvalidParameters, "cannot sample")
	}
	return func(yield func(float64) bool) {
		// Parameters are re-read on every draw so that setter
		// updates between restarts take effect.
		for yield(draw(t.rnd, t.location, t.scale, t.dof)) {
		}
	}, nil
}

// StudentTSamples returns an unbounded lazy stream of independent
// Student's t draws with the given parameters, using the supplied
// source. Parameters are always validated.
func StudentTSamples(src rand.Source, location, scale, dof float64) (iter.Seq[float64], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !IsValidParameterSet(location, scale, dof) {
		return nil, errors.Wrapf(ErrInvalidParameters,
			"location %v, scale %v, dof %v", location, scale, dof)
	}
	rnd := rand.New(src)
	return func(yield func(float64) bool) {
		for yield(draw(rnd, location, scale, dof)) {
		}
	}, nil
}
