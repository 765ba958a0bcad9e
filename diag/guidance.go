// SPDX-License-Identifier: EPL-2.0

package diag

// Guidance is the manual test procedure appended to every report.
const Guidance = `Microphone permissions:
  1. Open System Settings > Privacy & Security > Microphone
  2. Make sure the app ('ui' or 'Solar Audio') is listed and enabled
  3. If it is not listed, run the app once first
  Restart the app after granting permissions.

Audio devices:
  Run 'system_profiler SPAudioDataType' and look for 'Input Device' entries.

Metronome (without recording):
  1. Run the app: cd ui && flutter run -d macos
  2. Load any audio file to enable the transport
  3. Enable the metronome button
  4. Press Play; you should hear a click on every beat
  No clicks? Check the metronome button is highlighted, the output volume,
  and the logs for "Metronome enabled".

Count-in and recording:
  1. Grant microphone permission
  2. Press Record
  3. Expect a two bar count-in (8 beats at 120 BPM)
  4. The status changes to "Recording" after the count-in
  5. Speak into the microphone
  6. Press Record again to stop
  7. A waveform appears on the timeline
  No count-in? Check the logs for "Count-in..." and "Recording...", and that
  the transport bar shows 120 BPM.
  Nothing recorded? Check microphone permissions, look for
  "No input device available" in the logs, and confirm input levels in
  System Settings > Sound > Input.

Debug logging markers:
  "✅ [AudioEngine]"  successful operations
  "❌ [AudioEngine]"  errors
  "🎵 [AudioEngine]"  recording operations
  "⏺️  [AudioEngine]"  recording start/stop

Common issues:
  "No input device available"
    Grant microphone permission and restart the app.
  Count-in does not play
    Enable the metronome, unmute system output, and test playback with a
    loaded file first.
  Recording captures nothing
    Test the microphone in another app and select the built-in input in
    System Settings > Sound > Input.
  Waveform missing after recording
    Check the logs for the clip ID and make sure the recording lasted more
    than zero seconds.`
