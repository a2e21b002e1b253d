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

import "github.com/pkg/errors"

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidParameters is returned when a distribution is
	// constructed with, or mutated into, a parameter set that
	// violates its invariants.
	ErrInvalidParameters = errors.New("dist: invalid distribution parameters")

	// ErrUndefinedMoment is returned by moment accessors when the
	// requested moment does not exist for the current parameters.
	// It is a domain error, distinct from ErrInvalidParameters.
	ErrUndefinedMoment = errors.New("dist: moment is undefined for these parameters")

	// ErrNilSource is returned by any attempt to install a nil
	// random source. Parameter checking policy does not apply here;
	// a nil source is rejected unconditionally.
	ErrNilSource = errors.New("dist: random source must not be nil")
)
