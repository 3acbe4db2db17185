package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstName_Empty(t *testing.T) {
	assert.Equal(t, Unknown, FirstName(""))
	assert.Equal(t, Unknown, FirstName("   "))
}

func TestFirstName_StripTitle(t *testing.T) {
	assert.Equal(t, "John", FirstName("mr. john"))
	assert.Equal(t, "Jane", FirstName("Mrs. Jane"))
	assert.Equal(t, "Jane", FirstName("MRS jane"))
	assert.Equal(t, "Ann", FirstName("Dr Ann"))
	assert.Equal(t, "Bob", FirstName("Prof. Bob"))
	assert.Equal(t, "Tom", FirstName("sho tom"))
}

func TestFirstName_TitleMustBeWholeWord(t *testing.T) {
	assert.Equal(t, "Drew", FirstName("drew"))
	assert.Equal(t, "Mrsa", FirstName("mrsa"))
	assert.Equal(t, "Andy", FirstName("andy"))
}

func TestFirstName_OnlyTitle(t *testing.T) {
	assert.Equal(t, Unknown, FirstName("Mr."))
	assert.Equal(t, Unknown, FirstName("dr"))
}

func TestFirstName_Capitalization(t *testing.T) {
	assert.Equal(t, "Jane", FirstName("JANE"))
	assert.Equal(t, "Mary Jo", FirstName("mary   jo"))
}

func TestFirstName_Compound(t *testing.T) {
	assert.Equal(t, "Bob & Sue", FirstName("bob and sue"))
	assert.Equal(t, "Bob & Sue", FirstName("BOB AND SUE"))
	assert.Equal(t, "Bob & Sue", FirstName("bob&sue"))
	assert.Equal(t, "Bob & Sue & Al", FirstName("bob & sue & al"))
}

func TestFirstName_CompoundNoiseDropped(t *testing.T) {
	assert.Equal(t, "Bob", FirstName("bob and s."))
	assert.Equal(t, "Jack", FirstName("Jack & DD"))
	assert.Equal(t, "Bob", FirstName("bob &"))
}

func TestFirstName_Periods(t *testing.T) {
	assert.Equal(t, "J D", FirstName("j.d."))
}

func TestFirstName_Diacritics(t *testing.T) {
	assert.Equal(t, "José", FirstName("josé"))
	// Decomposed input is composed before capitalizing.
	assert.Equal(t, "José", FirstName("jose\u0301"))
	assert.Equal(t, "Élodie", FirstName("élodie"))
}

func TestLastName_Empty(t *testing.T) {
	assert.Equal(t, Unknown, LastName(""))
	assert.Equal(t, Unknown, LastName("\t"))
}

func TestLastName_StripSuffix(t *testing.T) {
	assert.Equal(t, "Smith", LastName("Smith Jr."))
	assert.Equal(t, "Jones", LastName("jones sr"))
	assert.Equal(t, "Thompson", LastName("Thompson Esq."))
	assert.Equal(t, Unknown, LastName("Jr."))
}

func TestLastName_TitlesNotStripped(t *testing.T) {
	assert.Equal(t, "Dr Smith", LastName("dr smith"))
}

func TestLastName_Slashes(t *testing.T) {
	assert.Equal(t, "Smith/Jones", LastName(`smith\jones`))
	assert.Equal(t, "Smith/Jones", LastName("SMITH/JONES"))
	assert.Equal(t, "Smith/Jones", LastName("smith / jones"))
	assert.Equal(t, "Smith/Jones/Lee", LastName(`smith/jones\lee`))
	assert.Equal(t, Unknown, LastName("/"))
}

func TestLastName_Compound(t *testing.T) {
	assert.Equal(t, "Smith & Jones", LastName("smith and jones"))
	// Short trailing parts are only dropped for first and full names.
	assert.Equal(t, "Smith & Jo", LastName("smith & jo"))
}

func TestLastName_Capitalization(t *testing.T) {
	assert.Equal(t, "O'brien", LastName("O'BRIEN"))
	assert.Equal(t, "Van Der Berg", LastName("van der berg"))
	assert.Equal(t, "Smith-jones", LastName("smith-jones"))
}

func TestFullName_Empty(t *testing.T) {
	assert.Equal(t, Unknown, FullName(""))
	assert.Equal(t, Unknown, FullName("mr. jr."))
}

func TestFullName_SingleToken(t *testing.T) {
	assert.Equal(t, "Cher", FullName("cher"))
	assert.Equal(t, "Cher", FullName("Ms. CHER"))
}

func TestFullName_FirstLast(t *testing.T) {
	assert.Equal(t, "John Smith", FullName("john smith"))
	assert.Equal(t, "John Smith", FullName("  JOHN    SMITH  "))
}

func TestFullName_MiddleInitials(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mr. aaron patrick jennings spurlock jr.", "Aaron PJ Spurlock"},
		{"dr. martin luther king jr.", "Martin L King"},
		{"mary ann elizabeth smith", "Mary AE Smith"},
		{"john pj smith", "John PJ Smith"},
		{"J.D. Salinger", "J D Salinger"},
		{"george h. w. bush", "George HW Bush"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.in))
		})
	}
}

func TestFullName_CompoundNoiseDropped(t *testing.T) {
	assert.Equal(t, "Jane", FullName("jane and x"))
	assert.Equal(t, "Jane Doe", FullName("jane doe & jd"))
}

func TestFullName_Idempotent(t *testing.T) {
	inputs := []string{
		"mr. aaron patrick jennings spurlock jr.",
		"john smith",
		"cher",
		"mary ann elizabeth smith",
		"J.D. Salinger",
		"élodie marie dupont",
		"",
	}
	for _, in := range inputs {
		once := FullName(in)
		assert.Equal(t, once, FullName(once), "input %q", in)
	}
}

func TestFullName_MiddleBlockSpellingTerm(t *testing.T) {
	// A middle block that spells a title or suffix is stripped on a second
	// pass, so idempotence only holds when the block is not a term.
	tests := []struct {
		in    string
		once  string
		twice string
	}{
		{"john mary susan smith", "John MS Smith", "John Smith"},
		{"john david rose smith", "John DR Smith", "John Smith"},
		{"john sam robert smith", "John SR Smith", "John Smith"},
		{"john jack ryan smith", "John JR Smith", "John Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once := FullName(tt.in)
			assert.Equal(t, tt.once, once)
			assert.Equal(t, tt.twice, FullName(once))
		})
	}
}

func TestFullName_AmpersandTokensBecomeInitials(t *testing.T) {
	assert.Equal(t, "A &B& C", FullName("a & b & c"))
	assert.Equal(t, "Bob &S Jones", FullName("bob & sue jones"))
}

func TestNames_UnicodeWhitespace(t *testing.T) {
	assert.Equal(t, "John P Smith", FullName("john\vpaul\u00a0smith"))
	assert.Equal(t, "Aaron PJ Spurlock", FullName("mr.\u00a0aaron\tpatrick\u2003jennings spurlock\u00a0jr."))
	assert.Equal(t, "John", FirstName("mr.\u00a0john"))
	assert.Equal(t, "Mary Jo", FirstName("mary\u00a0\u00a0jo"))
	assert.Equal(t, "Bob", FirstName("bob\u00a0and\u00a0s."))
	assert.Equal(t, "Bob & Sue", FirstName("bob\vand\u00a0sue"))
	assert.Equal(t, "Smith", LastName("smith\u00a0jr."))
	assert.Equal(t, "Van Der Berg", LastName("van\tder\vberg"))
	assert.Equal(t, Unknown, FirstName("\u00a0\v"))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", collapseSpace(" a\t\vb\u00a0\u3000c\u0085"))
	assert.Equal(t, "", collapseSpace("\u00a0"))
}

func TestStripTerms_LongestFirst(t *testing.T) {
	assert.Equal(t, "Jane", stripTerms("Mrs. Jane", roleFirst))
	assert.Equal(t, "Jane Doe ", stripTerms("Jane Doe Jr. ", roleLast))
	assert.Equal(t, "Aaron Spurlock ", stripTerms("Mr Aaron Spurlock Esq ", roleFull))
}

func TestTermsFor_Order(t *testing.T) {
	first := termsFor(roleFirst)
	assert.Equal(t, "mrs", first[0].term)
	assert.Equal(t, "mr", first[1].term)
	assert.Len(t, termsFor(roleLast), 3)
	assert.Len(t, termsFor(roleFull), len(firstNameTerms)+len(lastNameTerms))
}

func TestCapitalizeWords(t *testing.T) {
	assert.Equal(t, "", capitalizeWords(""))
	assert.Equal(t, "Hello World", capitalizeWords("hELLO  wORLD"))
	assert.Equal(t, "A", capitalizeWords("a"))
}
