package acid

//-----------------------------------------------------------------------------
// Shape
//-----------------------------------------------------------------------------

// Protons is the number of dissociable protons of the modelled acid and
// therefore the exact number of pKa values New accepts.
const Protons = 3

//-----------------------------------------------------------------------------
// Histidine preset
//-----------------------------------------------------------------------------

const (
	// HistidinePKa1 is the α-carboxyl pKa of histidine.
	HistidinePKa1 = 2.1
	// HistidinePKa2 is the imidazole side-chain pKa of histidine.
	HistidinePKa2 = 3.9
	// HistidinePKa3 is the α-amino pKa of histidine.
	HistidinePKa3 = 9.8
	// HistidinePI is the isoelectric point shown on the default chart.
	HistidinePI = 3.0
)

// midEquivalenceOffset places guide k at x = k + 0.5 equivalents, where
// pH ≈ pKa_k.
const midEquivalenceOffset = 0.5
