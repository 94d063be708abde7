package i18n

// Key identifies a user-facing message. The key doubles as the English
// format string.
type Key string

const (
	Banner          Key = "Recipe Finder"
	MenuTitle       Key = "Choose a search method:"
	MenuByName      Key = "1. Search by dish name"
	MenuByArea      Key = "2. Search by area/country"
	MenuExit        Key = "3. Exit"
	PromptChoice    Key = "Your choice"
	PromptName      Key = "Enter the dish name to search for"
	PromptArea      Key = "Choose an area/country number"
	InvalidChoice   Key = "Please select one of the available options"
	ErrConnect      Key = "Error: Unable to connect to the server."
	NoResults       Key = "No recipes found for dish: %s"
	FoundByName     Key = "Found %d recipes for dish: %s"
	AreaListTitle   Key = "Available areas/countries:"
	NoAreas         Key = "No areas/countries available."
	FoundByArea     Key = "Found %d recipes from %s"
	Farewell        Key = "Thank you for using Recipe Finder!"
	Progress        Key = "Fetching recipe details..."
	NotAvailable    Key = "Not available"
	ColumnInfo      Key = "Information"
	ColumnDetail    Key = "Detail"
	RowCategory     Key = "Category"
	RowArea         Key = "Area"
	RowIngredients  Key = "Ingredients"
	RowInstructions Key = "Instructions"
	RowVideo        Key = "YouTube link"
	Untitled        Key = "Untitled recipe"
)

// indonesian holds the default translations.
var indonesian = map[Key]string{
	Banner:          "Resep Makanan Finder",
	MenuTitle:       "Pilih metode pencarian:",
	MenuByName:      "1. Cari berdasarkan nama makanan",
	MenuByArea:      "2. Cari berdasarkan area/negara",
	MenuExit:        "3. Keluar",
	PromptChoice:    "Pilihan Anda",
	PromptName:      "Masukkan nama makanan yang ingin dicari",
	PromptArea:      "Pilih nomor area/negara",
	InvalidChoice:   "Pilihan tidak valid, silakan pilih salah satu opsi yang tersedia",
	ErrConnect:      "Error: Tidak dapat terhubung ke server.",
	NoResults:       "Tidak ditemukan resep untuk makanan: %s",
	FoundByName:     "Ditemukan %d resep untuk makanan: %s",
	AreaListTitle:   "Daftar Area/Negara tersedia:",
	NoAreas:         "Tidak ada area/negara yang tersedia.",
	FoundByArea:     "Ditemukan %d resep dari %s",
	Farewell:        "Terima kasih telah menggunakan Resep Makanan Finder!",
	Progress:        "Mengambil detail resep...",
	NotAvailable:    "Tidak tersedia",
	ColumnInfo:      "Informasi",
	ColumnDetail:    "Detail",
	RowCategory:     "Kategori",
	RowArea:         "Area",
	RowIngredients:  "Bahan-bahan",
	RowInstructions: "Instruksi",
	RowVideo:        "Link Youtube",
	Untitled:        "Resep tanpa nama",
}
