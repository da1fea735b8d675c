// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package osminfo

import (
	"m4o.io/osminfo/model"
)

// IDOrder reports whether id a sorts strictly before id b.  The treatment of
// negative placeholder ids is a convention, not a law of nature, so the
// comparator is pluggable.
type IDOrder func(a, b model.ID) bool

// DefaultIDOrder is the OSM convention: positive ids sort before negative
// ids, and within each group ids compare by absolute value.
func DefaultIDOrder(a, b model.ID) bool {
	if (a >= 0) != (b >= 0) {
		return a >= 0
	}

	return abs(a) < abs(b)
}

func abs(id model.ID) model.ID {
	if id < 0 {
		return -id
	}

	return id
}
