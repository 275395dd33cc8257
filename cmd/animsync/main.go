/*
Command animsync plays animation scenes against HTML documents, headless.

	animsync play --html page.html --out result.html scene.yaml
	animsync easings --samples 5
	animsync dump --html page.html .card

With --virtual, scenes are played on a virtual clock as fast as possible;
otherwise frames are rendered in real time at the configured frame rate.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

func main() {
	Execute()
}
