// Package render drives evaluation of a signal expression graph.
//
// A [Renderer] samples a node at consecutive indices 0, 1, 2, ... into a
// caller buffer, which is the order the frequency modulator relies on. The
// full render length comes from the processor configuration
// (sample rate × duration).
//
// Previews may animate the phase of the previewed generator(s). The override
// is transient: the original phase slots are restored before Preview returns,
// even if evaluation panics. An [Animator] supplies the advancing angle and is
// owned by the caller; there is no package level animation state.
//
// Callers must not rebind slots of a graph while a render of that graph is in
// progress.
package render
