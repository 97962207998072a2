package catalog

// Candidate is reference data supplied by the catalog. Immutable as far as
// the voting core is concerned.
type Candidate struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Party   string `json:"party"`
	Vision  string `json:"vision"`
	Mission string `json:"mission"`
	Color   string `json:"color"`
}

// Catalog resolves candidate IDs for vote casting and lists the full slate.
type Catalog interface {
	Lookup(id int) (Candidate, bool)
	All() []Candidate
}

// Static is a fixed in-memory Catalog.
type Static struct {
	ordered []Candidate
	byID    map[int]Candidate
}

func NewStatic(candidates []Candidate) *Static {
	s := &Static{
		ordered: make([]Candidate, len(candidates)),
		byID:    make(map[int]Candidate, len(candidates)),
	}
	copy(s.ordered, candidates)
	for _, c := range candidates {
		s.byID[c.ID] = c
	}
	return s
}

func (s *Static) Lookup(id int) (Candidate, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// All returns the slate in its declared order. The slice is a copy.
func (s *Static) All() []Candidate {
	out := make([]Candidate, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Default returns the seeded reference slate.
func Default() *Static {
	return NewStatic([]Candidate{
		{
			ID:      1,
			Name:    "Ahmad Santoso",
			Party:   "Partai Demokrat Digital",
			Vision:  "Teknologi untuk Semua",
			Mission: "Membangun infrastruktur digital yang merata di seluruh Indonesia. Meningkatkan literasi digital masyarakat melalui program pelatihan gratis. Menciptakan lapangan kerja berbasis teknologi untuk generasi muda.",
			Color:   "#4F46E5",
		},
		{
			ID:      2,
			Name:    "Siti Nurhaliza",
			Party:   "Gerakan Muda Indonesia",
			Vision:  "Indonesia Muda, Indonesia Maju",
			Mission: "Memberdayakan pemuda sebagai agen perubahan positif. Mengembangkan program kewirausahaan untuk startup lokal. Meningkatkan kualitas pendidikan dan pelatihan vokasi.",
			Color:   "#059669",
		},
		{
			ID:      3,
			Name:    "Budi Prasetyo",
			Party:   "Koalisi Rakyat Sejahtera",
			Vision:  "Kesejahteraan untuk Semua",
			Mission: "Mengurangi kesenjangan ekonomi melalui program bantuan sosial yang tepat sasaran. Menciptakan lapangan kerja melalui pemberdayaan UMKM. Meningkatkan akses layanan kesehatan dan pendidikan berkualitas.",
			Color:   "#DC2626",
		},
		{
			ID:      4,
			Name:    "Maya Sari",
			Party:   "Partai Lingkungan Hijau",
			Vision:  "Indonesia Hijau dan Berkelanjutan",
			Mission: "Mengembangkan energi terbarukan untuk mengurangi emisi karbon. Melindungi hutan dan keanekaragaman hayati Indonesia. Menciptakan ekonomi hijau melalui industri ramah lingkungan.",
			Color:   "#16A34A",
		},
	})
}
