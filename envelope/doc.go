// Package envelope parses, validates, and serializes the volume envelope
// of a UST note.
//
// An envelope string has the form
//
//	p1,p2,p3,v1,v2,v3,v4[,%][,p4[,p5[,v5]]]
//
// where the p-fields are timing offsets in milliseconds and the v-fields
// are volume levels in percent. The first seven fields are required. The
// eighth token is an optional literal "%" that is preserved through a
// round trip but otherwise carries no meaning. p4, p5, and v5 are optional
// and are represented by [Optional] so that an absent field stays distinct
// from a zero one.
//
// # Usage
//
//	env, err := envelope.Parse("0,5,35,0,100,100,0,%,10")
//	if err != nil {
//		return err
//	}
//	env.ZeroPValues()
//	if !env.IsValidWith(noteLength) {
//		// envelope longer than the note
//	}
//	s := env.String()
//
// [Envelope] is a plain value. Assignment copies it; it has no internal
// locking.
package envelope
