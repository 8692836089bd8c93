package santacerts

// BuiltinRecipients returns the certificate recipients shipped with the tool:
// Lia and Daniel du Plessis, with their personalized messages and gifts.
func BuiltinRecipients() []Recipient {
	return []Recipient{
		{
			Name: "Lia du Plessis",
			Slug: "lia",
			Message: `
        <p>My dear <span class="highlight">Lia</span>, what a remarkable young lady you have become!</p>

        <p>I've been watching you this year, and my goodness, you have made me SO proud!
        Your <span class="highlight">amazing school report</span> didn't go unnoticed up here at the North Pole -
        the elves were doing a happy dance when they saw your results!</p>

        <p>Now, I hear you're off to <span class="highlight">Paarl Girls' High</span> next year for Grade 8 -
        what an exciting new adventure awaits you! Starting high school AND living in the hostel...
        my dear, you are becoming such a <span class="highlight">brave and independent young lady</span>.
        Mom and Dad will miss you during the week, but they are bursting with pride!</p>

        <p>You're growing up so beautifully, and I know you'll shine bright at your new school.
        Remember, even when you're at the hostel, you carry your family's love with you always.
        And those weekends home? They'll be extra special!</p>

        <p>This gift is for YOU - to <span class="highlight">spoil yourself</span> and get some wonderful things
        for your exciting new chapter ahead. You deserve every bit of it!</p>
    `,
			Gift:     "R3,500",
			GiftNote: "Deposited into your account - treat yourself, superstar!",
		},
		{
			Name: "Daniel du Plessis",
			Slug: "daniel",
			Message: `
        <p>My dear <span class="highlight">Daniel</span>, what an AWESOME young man you are!</p>

        <p>Ho ho ho! I've been keeping a very close eye on you this year, and WOW -
        your <span class="highlight">amazing school report</span> had the reindeer doing backflips!
        Even Rudolph said "That Dan is going places!"</p>

        <p>I know how much you LOVE your sports - whether it's tackling on the
        <span class="highlight">rugby</span> field, smashing sixes in <span class="highlight">cricket</span>,
        or scoring goals in backyard <span class="highlight">soccer</span> - you give it your ALL!
        That's what champions are made of!</p>

        <p>And those <span class="highlight">doggies</span> of yours? They're lucky to have such a
        caring friend who loves them so much. Your big heart for your family and your furry pals
        makes you extra special!</p>

        <p>Now, here's something important: Next year, with Lia at high school, you'll be
        <span class="highlight">the man of the house</span> during the week! I KNOW you're going to
        step up and be amazing - you've got this, champ! Grade 5 is going to be YOUR year!</p>

        <p>Keep being the incredible, sporty, kind-hearted legend that you are!</p>
    `,
			Gift:     "R2,500",
			GiftNote: "A special stocking stuffer for the amazing DanTheMan!",
		},
	}
}
