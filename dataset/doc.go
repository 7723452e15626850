// SPDX-License-Identifier: EPL-2.0

// Package dataset downloads a sound-bank release and prepares it.
//
// A release is a JSON listing of files ({"files": [{"key", "links": {"self"}}]})
// holding <id>_original.* recordings and one metadata CSV, plus two base
// locations with per-recording <id>_segment.txt boundary tables and
// <id>_labels.txt annotation tables. The local tree is:
//
//	<root>/original_audio/<key>
//	<root>/original_audio/<metadata>.csv
//	<root>/processed_audio/<id>_processed.wav
//	<root>/labels/<id>_labels.txt
//
// Items are independent: a failure in one is recorded in its ItemResult and
// does not stop the rest.
package dataset
