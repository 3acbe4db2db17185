package sanitize

// City trims a city name and capitalizes each word.
//
//	City("  new   YORK ") // "New York"
func City(city string) string {
	return capitalizeWords(prepare(city))
}
