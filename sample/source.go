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

package sample

import (
	"time"

	"golang.org/x/exp/rand"
)

// Sampler is implemented by distributions able to produce
// independent random draws.
type Sampler interface {
	Sample() (float64, error)
}

// NewSource returns a seeded pseudo-random source suitable for
// injecting into a distribution.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// NewTimeSource returns a pseudo-random source seeded from the
// current wall clock. Not reproducible; use NewSource or a
// Salsa20Source when reproducibility matters.
func NewTimeSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
