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

import (
	"slices"

	"dirpx.dev/rfield"
	"dirpx.dev/rfield/apis"
	"dirpx.dev/rfield/class"
)

// Pet is the reference type of Animal-valued fields. It is bound to
// AnimalClass, so any Animal or descendant may be stored in it.
type Pet interface {
	apis.Object
	Sound() string
}

type Animal struct{}

type Dog struct {
	Animal
	Name string
	Age  uint32
}

type Puppy struct {
	Dog
	Trained bool
}

type Cat struct {
	Animal
	Name   string
	Lives  uint8
	Indoor bool
}

type Collar struct {
	Tag  string
	Size uint8
}

type Owner struct {
	Name   string
	Pet    Pet
	Best   *Dog
	Collar Collar
}

type Rock struct {
	Mineral  string
	Hardness int8
	Grains   uint16
	Depth    int32
	Age      int64
	Weight   uint64
}

type Kennel struct {
	Weights   []uint32
	Residents []Dog
	Occupied  []bool
	Pets      []Pet
	Grid      [][]int16
}

var (
	AnimalClass = rfield.NewClass[Animal]("zoo.Animal")

	DogClass = rfield.NewClass[Dog]("zoo.Dog",
		class.Extends(AnimalClass, func(d *Dog) *Animal { return &d.Animal }),
		class.Declare(func(d *class.Declarer[Dog]) {
			class.Field(d, "name", func(x *Dog) *string { return &x.Name })
			class.Field(d, "age", func(x *Dog) *uint32 { return &x.Age })
		}))

	PuppyClass = rfield.NewClass[Puppy]("zoo.Puppy",
		class.Extends(DogClass, func(p *Puppy) *Dog { return &p.Dog }),
		class.Declare(func(d *class.Declarer[Puppy]) {
			class.Field(d, "trained", func(x *Puppy) *bool { return &x.Trained })
		}))

	CatClass = rfield.NewClass[Cat]("zoo.Cat",
		class.Extends(AnimalClass, func(c *Cat) *Animal { return &c.Animal }),
		class.Declare(func(d *class.Declarer[Cat]) {
			class.Field(d, "name", func(x *Cat) *string { return &x.Name })
			class.Field(d, "lives", func(x *Cat) *uint8 { return &x.Lives })
			class.Field(d, "indoor", func(x *Cat) *bool { return &x.Indoor })
		}))

	CollarClass = rfield.NewClass[Collar]("zoo.Collar",
		class.Declare(func(d *class.Declarer[Collar]) {
			class.Field(d, "tag", func(x *Collar) *string { return &x.Tag })
			class.Field(d, "size", func(x *Collar) *uint8 { return &x.Size })
		}))

	OwnerClass = rfield.NewClass[Owner]("zoo.Owner",
		class.Declare(func(d *class.Declarer[Owner]) {
			class.Field(d, "name", func(x *Owner) *string { return &x.Name })
			class.Field(d, "pet", func(x *Owner) *Pet { return &x.Pet })
			class.Field(d, "best", func(x *Owner) **Dog { return &x.Best })
			class.Field(d, "collar", func(x *Owner) *Collar { return &x.Collar })
		}))

	RockClass = rfield.NewClass[Rock]("zoo.Rock",
		class.Declare(func(d *class.Declarer[Rock]) {
			class.Field(d, "mineral", func(x *Rock) *string { return &x.Mineral })
			class.Field(d, "hardness", func(x *Rock) *int8 { return &x.Hardness })
			class.Field(d, "grains", func(x *Rock) *uint16 { return &x.Grains })
			class.Field(d, "depth", func(x *Rock) *int32 { return &x.Depth })
			class.Field(d, "age", func(x *Rock) *int64 { return &x.Age })
			class.Field(d, "weight", func(x *Rock) *uint64 { return &x.Weight })
		}))

	KennelClass = rfield.NewClass[Kennel]("zoo.Kennel",
		class.CopyWith(func(dst, src *Kennel) {
			*dst = Kennel{
				Weights:   slices.Clone(src.Weights),
				Residents: slices.Clone(src.Residents),
				Occupied:  slices.Clone(src.Occupied),
				Pets:      slices.Clone(src.Pets),
				Grid:      make([][]int16, len(src.Grid)),
			}
			for i, row := range src.Grid {
				dst.Grid[i] = slices.Clone(row)
			}
		}),
		class.Declare(func(d *class.Declarer[Kennel]) {
			class.Field(d, "weights", func(x *Kennel) *[]uint32 { return &x.Weights })
			class.Field(d, "residents", func(x *Kennel) *[]Dog { return &x.Residents })
			class.Field(d, "occupied", func(x *Kennel) *[]bool { return &x.Occupied })
			class.Field(d, "pets", func(x *Kennel) *[]Pet { return &x.Pets })
			class.Field(d, "grid", func(x *Kennel) *[][]int16 { return &x.Grid })
		}))
)

func init() {
	if err := rfield.Bind[Pet](AnimalClass); err != nil {
		panic(err)
	}
}

func (*Animal) ClassType() apis.Class { return AnimalClass }
func (*Dog) ClassType() apis.Class    { return DogClass }
func (*Puppy) ClassType() apis.Class  { return PuppyClass }
func (*Cat) ClassType() apis.Class    { return CatClass }
func (*Collar) ClassType() apis.Class { return CollarClass }
func (*Owner) ClassType() apis.Class  { return OwnerClass }
func (*Rock) ClassType() apis.Class   { return RockClass }
func (*Kennel) ClassType() apis.Class { return KennelClass }

func (*Animal) Sound() string { return "..." }
func (*Dog) Sound() string    { return "woof" }
func (*Cat) Sound() string    { return "meow" }
