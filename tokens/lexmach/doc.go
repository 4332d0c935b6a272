/*
Package lexmach provides a token splitter backed by the lexmachine scanner
generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The splitter compiles a small DFA which skips runs of whitespace and matches
maximal runs of non-whitespace bytes. It splits at exactly the same bytes as
tokens.WhitespaceSplitter, but additionally reports the byte span of every token
in the input:

	sp, err := lexmach.NewSplitter()
	if err != nil {
		// do error handling
	}
	toks, err := sp.Scan("btn  btn-primary")
	for _, tok := range toks {
		fmt.Printf("%s @ %s\n", tok.Lexeme, tok.Span)   // btn @ (0…3), …
	}

A Splitter may be plugged into a normalizer:

	n := tokens.NewNormalizer(tokens.WithSplitter(sp))

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
