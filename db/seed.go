package db

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"literacy_app_backend/models"
)

// SeedData populates the database with the fixed module and question catalog.
// Inserts are idempotent so the seed can run on every startup.
func SeedData(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	for _, m := range SeedModules() {
		_, err = tx.Exec(`
			INSERT INTO modules (id, title, description, content, icon, order_index)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				content = EXCLUDED.content,
				icon = EXCLUDED.icon,
				order_index = EXCLUDED.order_index
		`, m.ID, m.Title, m.Description, m.Content, m.Icon, m.OrderIndex)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding module %s: %w", m.ID, err)
		}
	}

	for _, q := range SeedQuestions() {
		_, err = tx.Exec(`
			INSERT INTO questions (id, module_id, question_text, options, correct_answer, order_index)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				question_text = EXCLUDED.question_text,
				options = EXCLUDED.options,
				correct_answer = EXCLUDED.correct_answer,
				order_index = EXCLUDED.order_index
		`, q.ID, q.ModuleID, q.QuestionText, pq.Array(q.Options), q.CorrectAnswer, q.OrderIndex)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding question %s: %w", q.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// SeedModules returns the static course catalog.
func SeedModules() []models.Module {
	return []models.Module{
		{
			ID:          "m1",
			Title:       "Computer Basics",
			Description: "What a computer is made of and how to work with it day to day.",
			Content: "A computer is a machine that follows instructions to store, process and display information. " +
				"The main parts are the processor, which does the actual work, the memory, which holds what the computer " +
				"is working on right now, and the storage drive, which keeps files after the power is off. You interact " +
				"with all of this through input devices such as the keyboard and mouse and output devices such as the " +
				"screen and speakers.\n\n" +
				"The operating system ties the hardware together. It starts programs, shows windows, and decides which " +
				"program receives your typing. When a program stops responding, the operating system can close it " +
				"without restarting the whole machine. Shutting down through the menu, rather than cutting the power, " +
				"gives every program a chance to save its work first.",
			Icon:       "monitor",
			OrderIndex: 1,
		},
		{
			ID:          "m2",
			Title:       "Files and Folders",
			Description: "Organizing documents so you can find them again.",
			Content: "Everything you save on a computer lives in a file, and files live in folders. A folder can contain " +
				"other folders, which lets you build a structure that mirrors how you think about your work: one folder " +
				"per project, per year, or per subject. The file's extension, the short suffix after the dot, tells the " +
				"computer which program should open it.\n\n" +
				"Files that you delete are first moved to a recycle bin, from which they can be restored. Copying a file " +
				"leaves the original in place; moving it does not. For anything important, keep a second copy on an " +
				"external drive or in cloud storage, because a single disk can fail without warning.",
			Icon:       "folder",
			OrderIndex: 2,
		},
		{
			ID:          "m3",
			Title:       "The Internet and Email",
			Description: "Browsing the web, searching effectively, and using email.",
			Content: "A browser is the program you use to visit websites. The address bar shows where you are; a page " +
				"whose address begins with https encrypts the traffic between you and the site. Search engines index " +
				"the web and rank pages by relevance, so a few precise words usually find what a long sentence cannot.\n\n" +
				"Email delivers messages between addresses of the form name@domain. An attachment travels with the " +
				"message, but large files are better shared through a link. Reply answers the sender alone; reply-all " +
				"answers every recipient, which is rarely what you want. A message from an unknown sender asking you to " +
				"open an attachment or follow a link deserves suspicion before it deserves a click.",
			Icon:       "globe",
			OrderIndex: 3,
		},
		{
			ID:          "m4",
			Title:       "Staying Safe Online",
			Description: "Passwords, scams, and protecting your personal information.",
			Content: "A strong password is long, unique to the site, and stored in a password manager rather than your " +
				"memory or a sticky note. Two-factor authentication adds a second step, usually a code on your phone, so " +
				"a stolen password alone is not enough to enter your account.\n\n" +
				"Phishing messages imitate banks, delivery services and colleagues to trick you into revealing " +
				"credentials. Check the sender's address and hover over links before clicking; when in doubt, open the " +
				"site by typing its address yourself. Keep your system and browser updated, since updates close the " +
				"holes that attackers use, and never install software from a source you do not trust.",
			Icon:       "shield",
			OrderIndex: 4,
		},
	}
}

// SeedQuestions returns the static quiz catalog, five questions per module.
func SeedQuestions() []models.Question {
	return []models.Question{
		// Module 1 - Computer Basics
		{ID: "m1-q1", ModuleID: "m1", QuestionText: "Which part of the computer does the actual processing of instructions?", Options: []string{"The processor", "The screen", "The keyboard", "The speakers"}, CorrectAnswer: 0, OrderIndex: 1},
		{ID: "m1-q2", ModuleID: "m1", QuestionText: "What keeps your files after the computer is switched off?", Options: []string{"The memory", "The storage drive", "The processor", "The screen"}, CorrectAnswer: 1, OrderIndex: 2},
		{ID: "m1-q3", ModuleID: "m1", QuestionText: "Which of these is an input device?", Options: []string{"Speakers", "Screen", "Mouse", "Printer"}, CorrectAnswer: 2, OrderIndex: 3},
		{ID: "m1-q4", ModuleID: "m1", QuestionText: "What software ties the hardware together and starts programs?", Options: []string{"A browser", "A text editor", "An antivirus", "The operating system"}, CorrectAnswer: 3, OrderIndex: 4},
		{ID: "m1-q5", ModuleID: "m1", QuestionText: "Why should you shut down through the menu instead of cutting the power?", Options: []string{"Programs get a chance to save their work", "It charges the battery", "It makes startup slower", "It is required by law"}, CorrectAnswer: 0, OrderIndex: 5},

		// Module 2 - Files and Folders
		{ID: "m2-q1", ModuleID: "m2", QuestionText: "What does a file extension tell the computer?", Options: []string{"Which program should open the file", "How old the file is", "Who created the file", "How large the file is"}, CorrectAnswer: 0, OrderIndex: 1},
		{ID: "m2-q2", ModuleID: "m2", QuestionText: "Where does a deleted file go first?", Options: []string{"It is destroyed immediately", "The recycle bin", "An email to the administrator", "The desktop"}, CorrectAnswer: 1, OrderIndex: 2},
		{ID: "m2-q3", ModuleID: "m2", QuestionText: "What is the difference between copying and moving a file?", Options: []string{"There is no difference", "Moving is faster", "Copying leaves the original in place", "Copying deletes the original"}, CorrectAnswer: 2, OrderIndex: 3},
		{ID: "m2-q4", ModuleID: "m2", QuestionText: "Can a folder contain other folders?", Options: []string{"Only on servers", "No, never", "Only up to two levels", "Yes"}, CorrectAnswer: 3, OrderIndex: 4},
		{ID: "m2-q5", ModuleID: "m2", QuestionText: "Why keep a second copy of important files?", Options: []string{"A single disk can fail without warning", "It makes files open faster", "It is required by the operating system", "Copies use no space"}, CorrectAnswer: 0, OrderIndex: 5},

		// Module 3 - The Internet and Email
		{ID: "m3-q1", ModuleID: "m3", QuestionText: "What does an address starting with https mean?", Options: []string{"The traffic to the site is encrypted", "The site is free to use", "The site has no advertising", "The site is government-run"}, CorrectAnswer: 0, OrderIndex: 1},
		{ID: "m3-q2", ModuleID: "m3", QuestionText: "What usually works best when searching the web?", Options: []string{"A full sentence with punctuation", "A few precise words", "Typing in capital letters", "Repeating the same word"}, CorrectAnswer: 1, OrderIndex: 2},
		{ID: "m3-q3", ModuleID: "m3", QuestionText: "What is the shape of an email address?", Options: []string{"domain@name", "name.domain", "name@domain", "www.name"}, CorrectAnswer: 2, OrderIndex: 3},
		{ID: "m3-q4", ModuleID: "m3", QuestionText: "Who receives your message when you press reply-all?", Options: []string{"Only the sender", "Only you", "Your contacts list", "Every recipient of the original message"}, CorrectAnswer: 3, OrderIndex: 4},
		{ID: "m3-q5", ModuleID: "m3", QuestionText: "A stranger emails you an unexpected attachment. What should you do?", Options: []string{"Treat it with suspicion before clicking", "Open it immediately", "Forward it to friends", "Reply with your password"}, CorrectAnswer: 0, OrderIndex: 5},

		// Module 4 - Staying Safe Online
		{ID: "m4-q1", ModuleID: "m4", QuestionText: "What makes a password strong?", Options: []string{"It is long and unique to the site", "It is your birthday", "It is the word password", "It is the same everywhere"}, CorrectAnswer: 0, OrderIndex: 1},
		{ID: "m4-q2", ModuleID: "m4", QuestionText: "What does two-factor authentication add?", Options: []string{"A faster login", "A second step such as a code on your phone", "A backup of your files", "A longer password"}, CorrectAnswer: 1, OrderIndex: 2},
		{ID: "m4-q3", ModuleID: "m4", QuestionText: "What is phishing?", Options: []string{"A way to speed up the internet", "A type of computer game", "Messages that imitate trusted senders to steal credentials", "A method of file compression"}, CorrectAnswer: 2, OrderIndex: 3},
		{ID: "m4-q4", ModuleID: "m4", QuestionText: "You doubt a link in an email from your bank. What is safest?", Options: []string{"Click it quickly", "Reply asking if it is real", "Ignore your doubts", "Type the bank's address into the browser yourself"}, CorrectAnswer: 3, OrderIndex: 4},
		{ID: "m4-q5", ModuleID: "m4", QuestionText: "Why install system and browser updates?", Options: []string{"They close holes that attackers use", "They make the screen brighter", "They are only cosmetic", "They delete old files"}, CorrectAnswer: 0, OrderIndex: 5},
	}
}
