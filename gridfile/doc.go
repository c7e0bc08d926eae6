// Package gridfile reads and writes grid documents.
//
// A document is YAML in one of two shapes:
//
//	rows: 5                      map: |
//	cols: 5                        S....
//	start: [0, 0]                  .....
//	end: [4, 4]                    ##...
//	walls: [[2, 0], [2, 1]]        ....E
//
// The map alphabet is '.' open, '#' wall, 'S' start, 'E' end. Decoding
// collects every layout problem it can find before giving up; the returned
// error wraps both gridgraph.ErrInvalidGrid and a *multierror.Error listing
// the individual problems. Encode always writes the map shape.
//
// DecodeMatrix accepts the numeric matrix encoding (0 empty, 1 wall,
// 2 start, 3 end) as a YAML or JSON array of rows.
package gridfile
