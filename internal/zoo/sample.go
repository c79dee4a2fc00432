/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package zoo

import "dirpx.dev/rfield/apis"

// Sample returns a populated instance of the class called name.
func Sample(name string) (apis.Object, bool) {
	switch name {
	case AnimalClass.Name():
		return &Animal{}, true
	case DogClass.Name():
		return &Dog{Name: "Rex", Age: 3}, true
	case PuppyClass.Name():
		return &Puppy{Dog: Dog{Name: "Bit", Age: 0}, Trained: false}, true
	case CatClass.Name():
		return &Cat{Name: "Tom", Lives: 9, Indoor: true}, true
	case CollarClass.Name():
		return &Collar{Tag: "REX-01", Size: 4}, true
	case OwnerClass.Name():
		rex := &Dog{Name: "Rex", Age: 3}
		return &Owner{Name: "Ada", Pet: rex, Best: rex, Collar: Collar{Tag: "ADA", Size: 2}}, true
	case RockClass.Name():
		return &Rock{Mineral: "quartz", Hardness: 7, Grains: 1200, Depth: -40, Age: 1 << 40, Weight: 5000}, true
	case KennelClass.Name():
		return &Kennel{
			Weights:   []uint32{12, 30, 7},
			Residents: []Dog{{Name: "Rex", Age: 3}, {Name: "Fido", Age: 5}},
			Occupied:  []bool{true, false, true},
			Pets:      []Pet{&Cat{Name: "Tom", Lives: 9}, &Puppy{Dog: Dog{Name: "Bit"}}},
			Grid:      [][]int16{{1, -2}, {3}},
		}, true
	}
	return nil, false
}
