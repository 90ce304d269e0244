/*

The macroref package stores named code snippets ("macros") and rewrites
references to them in text. A reference is the marker character '#'
immediately followed by a macro name. You construct a Registry, add the
macro definitions and then pass the definitions and the text to be
rewritten to ResolveMacros. Every reference to a known macro is replaced
with the macro's code. References are resolved in a single pass over the
original text; a reference appearing only inside substituted code is left
as it is.

Macro values can be set directly on the Registry or found in macro
directories: if a directory has been given then Find will search it for a
file with the same name as the macro (possibly with a suffix) and the
contents of that file are used as the code. Any newly found macros are
cached for further use.

*/
package macroref
