// Copyright 2021 Airbus Defence and Space
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

package vsggis

import "github.com/airbusgeo/vsggis/data"

// AssignMetadata copies the dataset's metadata dictionary onto img, one
// string value per key. It reports whether anything was copied; datasets
// that do not expose metadata leave img untouched.
func AssignMetadata(ds Dataset, img data.Image) bool {
	mp, ok := ds.(MetadataProvider)
	if !ok {
		return false
	}
	md := mp.Metadata()
	if len(md) == 0 {
		return false
	}
	for k, v := range md {
		img.SetValue(k, v)
	}
	return true
}
