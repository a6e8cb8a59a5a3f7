package question

// Curated question data. Depth varies by category on purpose: Geography,
// Literature and Movies ship full banks at every difficulty, the rest carry
// a handful and rely on the synthesized/guaranteed tiers.

func curatedBank() map[string]map[string][]Question {
	return map[string]map[string][]Question{
		"Science": {
			DifficultyEasy: {
				bankQ("Science", "easy", "What is the chemical symbol for water?", "H2O", "CO2", "NaCl", "O2"),
				bankQ("Science", "easy", "Which planet is known as the Red Planet?", "Mars", "Venus", "Jupiter", "Mercury"),
				bankQ("Science", "easy", "What is the closest star to Earth?", "Sun", "Proxima Centauri", "Alpha Centauri", "Sirius"),
			},
			DifficultyMedium: {
				bankQ("Science", "medium", "Which element has the atomic number 79?", "Gold", "Silver", "Platinum", "Copper"),
				bankQ("Science", "medium", "What is the process called where plants make their own food using sunlight?", "Photosynthesis", "Respiration", "Digestion", "Fermentation"),
			},
			DifficultyHard: {
				bankQ("Science", "hard", "What is the half-life of Carbon-14?", "5,730 years", "1,600 years", "10,000 years", "3,200 years"),
				bankQ("Science", "hard", "Which subatomic particle has a positive charge?", "Proton", "Neutron", "Electron", "Positron"),
			},
		},
		"History": {
			DifficultyEasy: {
				bankQ("History", "easy", "Who was the first President of the United States?", "George Washington", "Thomas Jefferson", "Abraham Lincoln", "John Adams"),
				bankQ("History", "easy", "In what year did World War II end?", "1945", "1939", "1942", "1944"),
			},
		},
		"Geography": {
			DifficultyEasy: {
				bankQ("Geography", "easy", "What is the capital of France?", "Paris", "London", "Berlin", "Madrid"),
				bankQ("Geography", "easy", "Which ocean is the largest?", "Pacific Ocean", "Atlantic Ocean", "Indian Ocean", "Arctic Ocean"),
				bankQ("Geography", "easy", "What is the capital of Japan?", "Tokyo", "Kyoto", "Osaka", "Hiroshima"),
				bankQ("Geography", "easy", "Which is the longest river in the world?", "Nile", "Amazon", "Mississippi", "Yangtze"),
				bankQ("Geography", "easy", "Which country has the largest population in the world?", "China", "India", "United States", "Russia"),
				bankQ("Geography", "easy", "On which continent is the Sahara Desert located?", "Africa", "Asia", "Australia", "South America"),
				bankQ("Geography", "easy", "What is the name of the tallest mountain in the world?", "Mount Everest", "K2", "Mount Kilimanjaro", "Mount Fuji"),
				bankQ("Geography", "easy", "Which country is home to the Great Barrier Reef?", "Australia", "Mexico", "Thailand", "Brazil"),
				bankQ("Geography", "easy", "What is the capital of Canada?", "Ottawa", "Toronto", "Vancouver", "Montreal"),
				bankQ("Geography", "easy", "Which of these countries is NOT in Europe?", "Egypt", "Spain", "Italy", "Germany"),
			},
			DifficultyMedium: {
				bankQ("Geography", "medium", "Which country has the most pyramids?", "Sudan", "Egypt", "Mexico", "Peru"),
				bankQ("Geography", "medium", "What is the capital of Australia?", "Canberra", "Sydney", "Melbourne", "Perth"),
				bankQ("Geography", "medium", "Which of these countries is landlocked?", "Bolivia", "Peru", "Ecuador", "Chile"),
				bankQ("Geography", "medium", "Which African country was formerly known as Abyssinia?", "Ethiopia", "Nigeria", "Kenya", "Morocco"),
				bankQ("Geography", "medium", "The Strait of Gibraltar connects the Atlantic Ocean to which sea?", "Mediterranean Sea", "Red Sea", "Black Sea", "Baltic Sea"),
				bankQ("Geography", "medium", "What is the largest desert in the world?", "Antarctic Desert", "Sahara Desert", "Arabian Desert", "Gobi Desert"),
				bankQ("Geography", "medium", "Which country has the most natural lakes?", "Canada", "United States", "Russia", "Finland"),
				bankQ("Geography", "medium", "What is the capital of New Zealand?", "Wellington", "Auckland", "Christchurch", "Queenstown"),
				bankQ("Geography", "medium", "Which mountain range separates Europe from Asia?", "Ural Mountains", "Alps", "Caucasus Mountains", "Carpathian Mountains"),
				bankQ("Geography", "medium", "Which river flows through the Grand Canyon?", "Colorado River", "Missouri River", "Rio Grande", "Mississippi River"),
			},
			DifficultyHard: {
				bankQ("Geography", "hard", "Which South American country has the largest land area?", "Brazil", "Argentina", "Peru", "Colombia"),
				bankQ("Geography", "hard", "What is the world's oldest continuously inhabited city?", "Damascus", "Jerusalem", "Athens", "Rome"),
				bankQ("Geography", "hard", "Which country is the world's largest producer of coffee?", "Brazil", "Colombia", "Vietnam", "Ethiopia"),
				bankQ("Geography", "hard", "In which country would you find the city of Timbuktu?", "Mali", "Niger", "Chad", "Sudan"),
				bankQ("Geography", "hard", "Which is the only country to border both the Atlantic and Indian Oceans?", "South Africa", "Australia", "Brazil", "India"),
				bankQ("Geography", "hard", "What is the capital of Mongolia?", "Ulaanbaatar", "Astana", "Bishkek", "Tashkent"),
				bankQ("Geography", "hard", "Which country has the most time zones?", "France", "Russia", "United States", "Australia"),
				bankQ("Geography", "hard", "What is the lowest point on Earth's continental crust?", "Dead Sea", "Caspian Sea", "Death Valley", "Lake Eyre"),
				bankQ("Geography", "hard", "Which country has the largest number of active volcanoes?", "Indonesia", "Japan", "Philippines", "United States"),
				bankQ("Geography", "hard", "Which African country was never colonized by Europeans?", "Ethiopia", "South Africa", "Kenya", "Nigeria"),
			},
		},
		"Literature": {
			DifficultyEasy: {
				bankQ("Literature", "easy", "Who wrote 'Romeo and Juliet'?", "William Shakespeare", "Charles Dickens", "Jane Austen", "Mark Twain"),
				bankQ("Literature", "easy", "Who wrote 'Harry Potter'?", "J.K. Rowling", "Stephen King", "George R.R. Martin", "Tolkien"),
				bankQ("Literature", "easy", "Who is the author of 'Pride and Prejudice'?", "Jane Austen", "Charlotte Brontë", "Emily Brontë", "Virginia Woolf"),
				bankQ("Literature", "easy", "What is the name of the main character in 'The Great Gatsby'?", "Jay Gatsby", "Nick Carraway", "Tom Buchanan", "Daisy Buchanan"),
				bankQ("Literature", "easy", "Who wrote 'The Adventures of Tom Sawyer'?", "Mark Twain", "Charles Dickens", "Ernest Hemingway", "F. Scott Fitzgerald"),
				bankQ("Literature", "easy", "Which novel begins with the line 'It was the best of times, it was the worst of times'?", "A Tale of Two Cities", "Great Expectations", "Oliver Twist", "David Copperfield"),
				bankQ("Literature", "easy", "Who wrote 'To Kill a Mockingbird'?", "Harper Lee", "J.D. Salinger", "John Steinbeck", "F. Scott Fitzgerald"),
				bankQ("Literature", "easy", "What is the name of the hobbit in 'The Lord of the Rings'?", "Frodo Baggins", "Bilbo Baggins", "Samwise Gamgee", "Gollum"),
				bankQ("Literature", "easy", "In which century did William Shakespeare live?", "16th-17th century", "15th-16th century", "17th-18th century", "14th-15th century"),
				bankQ("Literature", "easy", "Who wrote 'The Catcher in the Rye'?", "J.D. Salinger", "F. Scott Fitzgerald", "Ernest Hemingway", "Mark Twain"),
			},
			DifficultyMedium: {
				bankQ("Literature", "medium", "Who wrote 'One Hundred Years of Solitude'?", "Gabriel García Márquez", "Isabel Allende", "Jorge Luis Borges", "Pablo Neruda"),
				bankQ("Literature", "medium", "Which novel features the character Holden Caulfield?", "The Catcher in the Rye", "The Great Gatsby", "To Kill a Mockingbird", "Lord of the Flies"),
				bankQ("Literature", "medium", "Who wrote 'Crime and Punishment'?", "Fyodor Dostoevsky", "Leo Tolstoy", "Anton Chekhov", "Nikolai Gogol"),
				bankQ("Literature", "medium", "Which Shakespeare play features the character Ophelia?", "Hamlet", "Macbeth", "Romeo and Juliet", "King Lear"),
				bankQ("Literature", "medium", "Who wrote 'The Old Man and the Sea'?", "Ernest Hemingway", "F. Scott Fitzgerald", "John Steinbeck", "William Faulkner"),
				bankQ("Literature", "medium", "Which poet wrote 'The Road Not Taken'?", "Robert Frost", "Walt Whitman", "Emily Dickinson", "T.S. Eliot"),
				bankQ("Literature", "medium", "What was Charles Dickens' final completed novel?", "Our Mutual Friend", "Great Expectations", "A Tale of Two Cities", "David Copperfield"),
				bankQ("Literature", "medium", "Which novel begins with the line 'Call me Ishmael'?", "Moby-Dick", "The Great Gatsby", "The Old Man and the Sea", "To Kill a Mockingbird"),
				bankQ("Literature", "medium", "Who wrote the poetry collection 'Leaves of Grass'?", "Walt Whitman", "Emily Dickinson", "Robert Frost", "T.S. Eliot"),
				bankQ("Literature", "medium", "Which novel features the character Jay Gatsby?", "The Great Gatsby", "The Catcher in the Rye", "To Kill a Mockingbird", "Moby-Dick"),
			},
			DifficultyHard: {
				bankQ("Literature", "hard", "Who wrote 'Ulysses'?", "James Joyce", "Virginia Woolf", "Marcel Proust", "D.H. Lawrence"),
				bankQ("Literature", "hard", "Which author created the character Inspector Morse?", "Colin Dexter", "Agatha Christie", "Arthur Conan Doyle", "P.D. James"),
				bankQ("Literature", "hard", "Which novel by Albert Camus tells the story of a man named Meursault who kills an Arab?", "The Stranger", "The Plague", "The Fall", "The Myth of Sisyphus"),
				bankQ("Literature", "hard", "Who wrote 'The Brothers Karamazov'?", "Fyodor Dostoevsky", "Leo Tolstoy", "Anton Chekhov", "Ivan Turgenev"),
				bankQ("Literature", "hard", "Which author won the Nobel Prize in Literature in 1954?", "Ernest Hemingway", "William Faulkner", "John Steinbeck", "T.S. Eliot"),
				bankQ("Literature", "hard", "Which of these works is NOT by Shakespeare?", "Doctor Faustus", "The Tempest", "King Lear", "Twelfth Night"),
				bankQ("Literature", "hard", "Who wrote 'The Sound and the Fury'?", "William Faulkner", "Ernest Hemingway", "F. Scott Fitzgerald", "John Steinbeck"),
				bankQ("Literature", "hard", "What was the original title of Jane Austen's 'Pride and Prejudice'?", "First Impressions", "Social Standings", "Elizabeth and Darcy", "A Lady's Reputation"),
				bankQ("Literature", "hard", "Which Russian author wrote 'War and Peace'?", "Leo Tolstoy", "Fyodor Dostoevsky", "Anton Chekhov", "Nikolai Gogol"),
				bankQ("Literature", "hard", "Which literary movement was James Joyce associated with?", "Modernism", "Romanticism", "Naturalism", "Realism"),
			},
		},
		"Movies": {
			DifficultyEasy: {
				bankQ("Movies", "easy", "Which movie won the Oscar for Best Picture in 2020?", "Parasite", "1917", "Joker", "Once Upon a Time in Hollywood"),
				bankQ("Movies", "easy", "Who directed the movie 'Titanic'?", "James Cameron", "Steven Spielberg", "Christopher Nolan", "Martin Scorsese"),
				bankQ("Movies", "easy", "Which actor played Iron Man in the Marvel Cinematic Universe?", "Robert Downey Jr.", "Chris Evans", "Chris Hemsworth", "Mark Ruffalo"),
				bankQ("Movies", "easy", "Which animated movie features a character named Simba?", "The Lion King", "Finding Nemo", "Toy Story", "Shrek"),
				bankQ("Movies", "easy", "Who played Jack in the movie 'Titanic'?", "Leonardo DiCaprio", "Brad Pitt", "Tom Cruise", "Johnny Depp"),
				bankQ("Movies", "easy", "Which of these movies is NOT directed by Christopher Nolan?", "Avatar", "Inception", "Interstellar", "The Dark Knight"),
				bankQ("Movies", "easy", "What was the first movie in the 'Harry Potter' series?", "Harry Potter and the Philosopher's Stone", "Harry Potter and the Chamber of Secrets", "Harry Potter and the Prisoner of Azkaban", "Harry Potter and the Goblet of Fire"),
				bankQ("Movies", "easy", "Which actor played Neo in 'The Matrix'?", "Keanu Reeves", "Tom Cruise", "Brad Pitt", "Will Smith"),
				bankQ("Movies", "easy", "Which movie features a character named Forrest Gump?", "Forrest Gump", "The Green Mile", "Cast Away", "Saving Private Ryan"),
				bankQ("Movies", "easy", "Which of these is NOT a Pixar movie?", "Shrek", "Toy Story", "Finding Nemo", "Up"),
			},
			DifficultyMedium: {
				bankQ("Movies", "medium", "Who directed 'Pulp Fiction'?", "Quentin Tarantino", "Martin Scorsese", "Steven Spielberg", "David Fincher"),
				bankQ("Movies", "medium", "Which actor won an Oscar for his role in 'The Revenant'?", "Leonardo DiCaprio", "Brad Pitt", "Matthew McConaughey", "Eddie Redmayne"),
				bankQ("Movies", "medium", "Which movie features the character Hannibal Lecter?", "The Silence of the Lambs", "Seven", "Psycho", "American Psycho"),
				bankQ("Movies", "medium", "Who directed 'Schindler's List'?", "Steven Spielberg", "Martin Scorsese", "Stanley Kubrick", "Francis Ford Coppola"),
				bankQ("Movies", "medium", "Which movie won the most Oscars in history?", "Titanic, The Lord of the Rings: The Return of the King, and Ben-Hur (tied)", "Avatar", "Gone with the Wind", "The Godfather"),
				bankQ("Movies", "medium", "Which actress played Hermione Granger in the Harry Potter films?", "Emma Watson", "Emma Stone", "Jennifer Lawrence", "Emma Roberts"),
				bankQ("Movies", "medium", "In which year was the first Star Wars movie released?", "1977", "1980", "1975", "1983"),
				bankQ("Movies", "medium", "What is the highest-grossing animated film of all time (as of 2023)?", "The Lion King (2019)", "Frozen II", "Super Mario Bros. Movie", "Incredibles 2"),
				bankQ("Movies", "medium", "Which film won the Academy Award for Best Picture in 2019?", "Green Book", "Roma", "Black Panther", "A Star Is Born"),
				bankQ("Movies", "medium", "Who directed 'Inception'?", "Christopher Nolan", "James Cameron", "Steven Spielberg", "Martin Scorsese"),
			},
			DifficultyHard: {
				bankQ("Movies", "hard", "Which actor has won the most Academy Awards for Best Actor?", "Daniel Day-Lewis", "Jack Nicholson", "Marlon Brando", "Tom Hanks"),
				bankQ("Movies", "hard", "Who directed the 1963 film '8½'?", "Federico Fellini", "Ingmar Bergman", "Akira Kurosawa", "François Truffaut"),
				bankQ("Movies", "hard", "Which movie was based on the novel 'Do Androids Dream of Electric Sheep?'", "Blade Runner", "Total Recall", "The Matrix", "Minority Report"),
				bankQ("Movies", "hard", "Which film won the Palme d'Or at the Cannes Film Festival in 1994?", "Pulp Fiction", "The Piano", "Schindler's List", "Three Colors: Red"),
				bankQ("Movies", "hard", "Who was the youngest person to win an Academy Award for Best Director?", "Damien Chazelle", "Orson Welles", "Steven Spielberg", "John Singleton"),
				bankQ("Movies", "hard", "Which film holds the record for most Academy Award nominations without winning any?", "The Turning Point and The Color Purple (tied)", "American Hustle", "Gangs of New York", "The Irishman"),
				bankQ("Movies", "hard", "In the original 'King Kong' (1933), what was the name of the island where Kong was found?", "Skull Island", "Monster Island", "Kong Island", "Ape Island"),
				bankQ("Movies", "hard", "Which actress has received the most Academy Award nominations without winning?", "Glenn Close", "Amy Adams", "Deborah Kerr", "Thelma Ritter"),
				bankQ("Movies", "hard", "Who was originally cast as Aragorn in 'The Lord of the Rings' before Viggo Mortensen?", "Stuart Townsend", "Russell Crowe", "Nicolas Cage", "Daniel Day-Lewis"),
				bankQ("Movies", "hard", "Which classic film features the line 'Rosebud'?", "Citizen Kane", "Casablanca", "Gone with the Wind", "It's a Wonderful Life"),
			},
		},
		"Sports": {
			DifficultyEasy: {
				bankQ("Sports", "easy", "In which sport would you perform a slam dunk?", "Basketball", "Football", "Tennis", "Golf"),
			},
		},
		"Technology": {
			DifficultyEasy: {
				bankQ("Technology", "easy", "Who founded Microsoft?", "Bill Gates", "Steve Jobs", "Mark Zuckerberg", "Jeff Bezos"),
			},
		},
		"Music": {
			DifficultyEasy: {
				bankQ("Music", "easy", "Which band performed the song 'Bohemian Rhapsody'?", "Queen", "The Beatles", "Led Zeppelin", "Rolling Stones"),
			},
		},
	}
}

// guaranteedBank holds the hand-picked records reserved as the last-resort
// supply; every entry is known to pass the sample filter.
func guaranteedBank() map[string]map[string][]Question {
	return map[string]map[string][]Question{
		"Science": {
			DifficultyEasy: {
				bankQ("Science", "easy", "What is the largest planet in our solar system?", "Jupiter", "Saturn", "Neptune", "Earth"),
				bankQ("Science", "easy", "What is the chemical formula for water?", "H2O", "CO2", "O2", "NaCl"),
			},
			DifficultyMedium: {
				bankQ("Science", "medium", "What is the atomic number of carbon?", "6", "12", "14", "8"),
			},
			DifficultyHard: {
				bankQ("Science", "hard", "What is the half-life of Carbon-14?", "5,730 years", "1,600 years", "10,000 years", "3,200 years"),
			},
		},
		"History": {
			DifficultyEasy: {
				bankQ("History", "easy", "Who was the first President of the United States?", "George Washington", "Thomas Jefferson", "Abraham Lincoln", "John Adams"),
			},
			DifficultyMedium: {
				bankQ("History", "medium", "In what year did World War II end?", "1945", "1939", "1942", "1944"),
			},
			DifficultyHard: {
				bankQ("History", "hard", "Which treaty ended the War of 1812?", "Treaty of Ghent", "Treaty of Paris", "Treaty of Versailles", "Treaty of Tordesillas"),
			},
		},
		"Geography": {
			DifficultyEasy: {
				bankQ("Geography", "easy", "What is the capital of France?", "Paris", "London", "Berlin", "Madrid"),
			},
			DifficultyMedium: {
				bankQ("Geography", "medium", "Which river is the longest in the world?", "Nile", "Amazon", "Mississippi", "Yangtze"),
			},
			DifficultyHard: {
				bankQ("Geography", "hard", "Which country has the most natural lakes?", "Canada", "United States", "Russia", "Finland"),
			},
		},
		"Literature": {
			DifficultyEasy: {
				bankQ("Literature", "easy", "Who wrote 'Romeo and Juliet'?", "William Shakespeare", "Charles Dickens", "Jane Austen", "Mark Twain"),
			},
			DifficultyMedium: {
				bankQ("Literature", "medium", "Which novel begins with the line 'It was the best of times, it was the worst of times'?", "A Tale of Two Cities", "Great Expectations", "Oliver Twist", "David Copperfield"),
			},
			DifficultyHard: {
				bankQ("Literature", "hard", "Who wrote 'One Hundred Years of Solitude'?", "Gabriel García Márquez", "Jorge Luis Borges", "Pablo Neruda", "Isabel Allende"),
			},
		},
		"Movies": {
			DifficultyEasy: {
				bankQ("Movies", "easy", "Who directed the movie 'Titanic'?", "James Cameron", "Steven Spielberg", "Christopher Nolan", "Martin Scorsese"),
			},
			DifficultyMedium: {
				bankQ("Movies", "medium", "Which actor played Iron Man in the Marvel Cinematic Universe?", "Robert Downey Jr.", "Chris Evans", "Chris Hemsworth", "Mark Ruffalo"),
			},
			DifficultyHard: {
				bankQ("Movies", "hard", "Which film won the Academy Award for Best Picture in 1994?", "Schindler's List", "The Fugitive", "The Piano", "The Remains of the Day"),
			},
		},
		"Technology": {
			DifficultyEasy: {
				bankQ("Technology", "easy", "What does CPU stand for?", "Central Processing Unit", "Computer Personal Unit", "Central Process Unit", "Central Processor Unit"),
			},
			DifficultyMedium: {
				bankQ("Technology", "medium", "In what year was the first iPhone released?", "2007", "2005", "2009", "2010"),
			},
			DifficultyHard: {
				bankQ("Technology", "hard", "Who is considered the father of modern computer science?", "Alan Turing", "Bill Gates", "Steve Jobs", "Tim Berners-Lee"),
			},
		},
	}
}
