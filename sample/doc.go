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

// Package sample provides random sources and the Sampler interface
// used by the distributions in this library.
//
// The Sampler interface is implemented by any distribution able to
// produce independent float64 draws. Implementations can be used,
// for instance, to fill data.Vector structures with random values.
//
// Sources follow the golang.org/x/exp/rand Source contract, so they
// plug directly into any distribution in this library. Salsa20Source
// additionally gives deterministic, key-reproducible streams.
package sample
