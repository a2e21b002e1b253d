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

// Package dist implements continuous probability distributions
// over float64 values.
//
// Each distribution owns its parameters and a pseudo-random source,
// and exposes density, cumulative distribution, moments and random
// sampling. Constructors validate parameters up front; the Unchecked
// constructors skip validation and let invalid parameters propagate
// as NaN results instead.
//
// Distributions implement the sample.Sampler interface and can be
// used, for instance, to fill data.Vector structures with random
// draws.
package dist
