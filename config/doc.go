// Package config reads decomposition layouts from YAML.
//
// A layout either spells out its geometry and rule chain:
//
//	geometry:
//	  - size: 42
//	    parity: even
//	rules:
//	  - {name: MPI X, kind: qper, axis: 0, parts: 4}
//	  - {name: VECTOR X, kind: qopen, axis: 0, parts: 2}
//	  - {name: halos X, kind: hbb, axis: 0, halo: 1}
//	  - {name: EO, kind: eo, axes: [true]}
//	  - {name: EO-flattened, kind: leaf, axis: 1}
//
// or asks for the standard lattice chain:
//
//	standard:
//	  sizes: [42, 42, 42, 42]
//	  ranks: [4, 4, 4, 4]
//	  lanes: [2, 2, 2, 2]
//	  halo: 1
//
// Documents are decoded strictly (unknown fields are errors) and checked
// with struct tags before conversion.
package config
