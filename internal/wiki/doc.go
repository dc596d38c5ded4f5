// Package wiki provides the naming and layout conventions of an Azure DevOps
// style wiki export.
//
// # Names
//
// Page names on disk are encoded: a space is stored as a hyphen and a literal
// hyphen is stored as %2D, everything else is percent-encoded:
//
//	wiki.Encode("Non-Functional Requirements") // "Non%2DFunctional-Requirements"
//	wiki.Decode("Conceptual-Level%3A-Behaviour") // "Conceptual Level: Behaviour"
//
// # Layout
//
// Each section directory holds an .order file listing its pages, one name per
// line. A page is stored as <name>.md and its child pages, if any, live in a
// sibling directory called <name>:
//
//	Sample.wiki/
//	  .order          S1, S2
//	  .attachments/
//	  S1.md
//	  S1/
//	    .order        SS1
//	    SS1.md
//	  S2.md
//
// The wiki root is the topmost directory reachable by walking upward while
// every directory still has an .order file. Attachments live in the
// .attachments directory under the root.
//
// # Appendices
//
// Pages whose title starts with "Appendix" can be flattened to a fixed heading
// level on export. AppendixName strips the "Appendix A:" style label:
//
//	wiki.AppendixName("Appendix A: Bibliography") // "Bibliography"
package wiki
